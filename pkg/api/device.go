package api

// RegisterDeviceResponse представляет ответ на регистрацию устройства
type RegisterDeviceResponse struct {
	DeviceID  string `json:"device_id"`  // UUID устройства
	Token     string `json:"token"`      // JWT токен устройства
	ExpiresIn int64  `json:"expires_in"` // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

package api

import "github.com/iudanet/muslimguide/internal/models"

// CounterDeltaRequest запрос на изменение счетчика голосов
type CounterDeltaRequest struct {
	Field models.CounterField `json:"field"` // "likes" или "dislikes"
	Delta int                 `json:"delta"` // +1 или -1
}

// CounterDeltaResponse текущие значения счетчиков после применения дельты.
// Applied=false означает, что уменьшение уперлось в ноль и счетчик не менялся.
type CounterDeltaResponse struct {
	ItemID   string `json:"item_id"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	Applied  bool   `json:"applied"`
}

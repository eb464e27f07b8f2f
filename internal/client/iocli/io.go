package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод-вывод CLI команд
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// IsInteractive reports whether input comes from a terminal
	IsInteractive() bool
}

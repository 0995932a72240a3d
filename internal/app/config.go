package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string // data directory, e.g. $HOME/.minibank
	BankName string // display name shown by the CLI; not persisted
	LogLevel string // zap level: debug, info, warn, error
}

package logger

import "go.uber.org/zap"

// New builds the process logger. Debug mode switches to the development
// config so the CLI can be run with readable diagnostics on stderr.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

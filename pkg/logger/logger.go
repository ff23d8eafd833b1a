package logger

import "go.uber.org/zap"

// New returns the application logger: JSON output in production,
// human-readable console output otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

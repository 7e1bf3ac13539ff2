package kit

import "go.uber.org/zap"

// NewLogger builds the service logger. Development gets the console
// encoder, everything else the production JSON config.
func NewLogger(service, env string) *zap.Logger {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]any{"service": service}
	l, _ := cfg.Build()
	return l
}

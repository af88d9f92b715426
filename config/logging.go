package config

import "go.uber.org/zap"

// setLogger returns the zap logger matching the deploy environment.
// Production logs json at info level, development logs console at
// debug, anything else gets the example logger for local runs.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProductionConfig().Build()
	case "development":
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewExample(), nil
}

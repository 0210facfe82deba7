package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	GatewayAddr string `envconfig:"GATEWAY_ADDR" default:"localhost:8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"e2e-secret"`
	// E2E_DEBUG_JSON allows dumping full websocket frames as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

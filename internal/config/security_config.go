package config

import "time"

const jwtSecretVar = "JWT_SECRET"

type SecurityConfig interface {
	GetSigningSecret() string
	GetSessionTTL() time.Duration
}

type Security struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

var _ SecurityConfig = Security{}

func (s Security) GetSigningSecret() string {
	return s.JWTSecret
}

func (s Security) GetSessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return 24 * time.Hour
	}
	return s.SessionTTL
}

package auth

import (
	"os"
	"time"

	"github.com/ai-solution/site-backend/pkg/env"
)

type Config struct {
	JWTSecret     string
	TokenLifetime time.Duration
	OTPLifetime   time.Duration
	// OTPMaxAttempts bounds verification attempts per issued code; exceeding
	// it invalidates the code.
	OTPMaxAttempts int
}

func NewConfig() Config {
	return Config{
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenLifetime:  time.Duration(env.GetEnvInt("TOKEN_LIFETIME_HOURS", 8)) * time.Hour,
		OTPLifetime:    time.Duration(env.GetEnvInt("OTP_LIFETIME_MINS", 10)) * time.Minute,
		OTPMaxAttempts: env.GetEnvInt("OTP_MAX_ATTEMPTS", 5),
	}
}

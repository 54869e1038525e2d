package mail

import (
	"os"
	"time"

	"github.com/ai-solution/site-backend/pkg/env"
)

type MailConfig struct {
	SMTPHost    string
	SMTPPort    string
	Username    string
	Password    string
	From        string
	DialTimeout time.Duration
	MaxRetries  int
}

func NewMailConfig() *MailConfig {
	cfg := &MailConfig{
		SMTPHost:    env.GetEnv("MAIL_HOST", "smtp.gmail.com"),
		SMTPPort:    env.GetEnv("MAIL_PORT", "587"),
		Username:    os.Getenv("MAIL_USERNAME"),
		Password:    os.Getenv("MAIL_PASSWORD"),
		From:        os.Getenv("MAIL_FROM"),
		DialTimeout: time.Duration(env.GetEnvInt("MAIL_DIAL_TIMEOUT_SECS", 30)) * time.Second,
		MaxRetries:  env.GetEnvInt("MAIL_MAX_RETRIES", 2),
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return cfg
}

// Configured reports whether outbound mail can be attempted at all. A server
// without credentials still starts, dispatches just fail with a mail error.
func (c *MailConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

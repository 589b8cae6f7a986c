package util

import "time"

// AppEnv controls logger output and verbosity
type AppEnv string

const (
	AppEnvLocal AppEnv = "local"
	AppEnvDev   AppEnv = "dev"
	AppEnvProd  AppEnv = "prod"
	AppEnvTest  AppEnv = "test"
)

type SMTPConfig struct {
	Host               string
	Port               int
	User               string
	Pass               string
	SenderName         string
	From               string
	InsecureSkipVerify bool
}

type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

type Config struct {
	Port    string
	Env     AppEnv
	SMTP    SMTPConfig
	Webhook WebhookConfig
}

// LoadConfig reads configuration from the process environment.
// Call godotenv.Load before this if a .env file should be honoured.
func LoadConfig() *Config {
	user := getEnv("SMTP_USER", "")

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  parseAppEnv(getEnv("APP_ENV", string(AppEnvLocal))),
		SMTP: SMTPConfig{
			Host:               getEnv("SMTP_HOST", "localhost"),
			Port:               getEnvInt("SMTP_PORT", 587),
			User:               user,
			Pass:               getEnv("SMTP_PASS", ""),
			SenderName:         getEnv("SMTP_SENDER_NAME", "Support Team"),
			From:               getEnv("SMTP_FROM", user),
			InsecureSkipVerify: getEnvBool("SMTP_INSECURE_SKIP_VERIFY", false),
		},
		Webhook: WebhookConfig{
			URL:     getEnv("EMAIL_WEBHOOK_URL", "http://localhost:8080/exec"),
			Timeout: getEnvDuration("EMAIL_WEBHOOK_TIMEOUT", 10*time.Second),
		},
	}
}

func parseAppEnv(s string) AppEnv {
	switch AppEnv(s) {
	case AppEnvDev, AppEnvProd, AppEnvTest:
		return AppEnv(s)
	default:
		return AppEnvLocal
	}
}

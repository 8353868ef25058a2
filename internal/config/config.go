package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `validate:"required"`
	Database DatabaseConfig `validate:"required"`
	Auth     AuthConfig     `validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `env:"PORT"        envDefault:"5000"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `env:"LOG_LEVEL"   envDefault:"info"        validate:"required,oneof=debug info warn error"`
	Environment string `env:"APP_ENV"     envDefault:"development" validate:"required,oneof=development production"`

	// AllowedOrigins lists the cross-origin caller addresses permitted to
	// send credentialed requests. Wildcards are not supported because the
	// session cookie requires Access-Control-Allow-Credentials.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// DatabaseConfig contains all document-store-related configuration settings.
type DatabaseConfig struct {
	URI  string `env:"MONGODB_URI"      validate:"required"`
	Name string `env:"MONGODB_DATABASE" envDefault:"taskward" validate:"required"`

	// ConnectTimeout bounds the initial connection and ping at startup.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret signs session credentials. A short secret is a fatal
	// misconfiguration, rejected at startup rather than per-request.
	JWTSecret string `env:"JWT_SECRET" validate:"required,min=32"`

	// TokenLifetime is how long an issued credential remains valid.
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"24h" validate:"required"`

	// CookieName is the name of the http-only session cookie carrying the
	// credential.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"token" validate:"required"`
}

// IsProduction reports whether the server runs in production mode.
// It controls the Secure and SameSite attributes of the session cookie.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

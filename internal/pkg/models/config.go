package models

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	API    APIConfig
	JWT    JWTConfig
	Logger LoggerConfig
	Stub   StubConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings for the stub backend
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// APIConfig holds settings for the admin backend the console talks to
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// JWTConfig holds JWT token settings
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// StubConfig holds seed data for the stub backend
type StubConfig struct {
	AdminEmail    string
	AdminPassword string
	OTPCode       string
}

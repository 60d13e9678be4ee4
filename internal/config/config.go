package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
// Las credenciales del LLM no son required a proposito: su ausencia es un
// error de configuracion que se reporta por request (500), no un fallo de
// arranque.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	LLMAPIKey      string `env:"LLM_API_KEY"`
	LLMBaseURL     string `env:"LLM_BASE_URL" envDefault:"https://ai.gateway.lovable.dev/v1"`
	LLMVisionModel string `env:"LLM_VISION_MODEL" envDefault:"google/gemini-2.5-flash"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`

	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ScanRateWindowSeconds int `env:"SCAN_RATE_WINDOW_SECONDS" envDefault:"60"`
	ScanRateMax           int `env:"SCAN_RATE_MAX" envDefault:"10"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ChatAPIKey devuelve la credencial del chat, con fallback a la del
// gateway de vision cuando no hay una dedicada.
func (c *Config) ChatAPIKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.LLMAPIKey
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	PDF      PDFConfig
	Translit TranslitConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig settings for the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PDFConfig settings for the invoice renderer.
// HindiFontPath points at a Devanagari-capable TTF (e.g. Noto Sans
// Devanagari). When empty, bilingual invoices fall back to English labels
// since maroto's built-in fonts cannot shape Devanagari.
type PDFConfig struct {
	HindiFontPath string
}

// TranslitConfig settings for the external transliteration lookup.
// An empty BaseURL disables the feature: lookups then always fall back to
// the typed word.
type TranslitConfig struct {
	BaseURL        string
	TimeoutSeconds int
	Language       string // target language code, e.g. "hi"
}

// Load reads the configuration from environment variables (and optionally a
// .env file). Env vars win. Expected names: APP_ENV, HTTP_PORT,
// PDF_HINDI_FONT_PATH, TRANSLIT_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env in the working directory).
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gst-billing-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		PDF: PDFConfig{
			HindiFontPath: getString(v, "PDF_HINDI_FONT_PATH", ""),
		},
		Translit: TranslitConfig{
			BaseURL:        getString(v, "TRANSLIT_BASE_URL", "https://inputtools.google.com/request"),
			TimeoutSeconds: getInt(v, "TRANSLIT_TIMEOUT_SECONDS", 5),
			Language:       getString(v, "TRANSLIT_LANG", "hi"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

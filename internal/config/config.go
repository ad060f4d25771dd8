package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the server.
type Config struct {
	Server     ServerConfig
	Google     GoogleConfig
	OpenAI     OpenAIConfig
	Deepgram   DeepgramConfig
	ElevenLabs ElevenLabsConfig
	S3         S3Config
	Session    SessionConfig
}

type ServerConfig struct {
	Port           int
	PortProbeLimit int
	AllowedOrigins []string
	RateLimitRPM   int
	BodyLimitBytes int64
	StaticDir      string
}

type GoogleConfig struct {
	APIKey          string
	CredentialsFile string
	SpeechEnabled   bool
}

type OpenAIConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	MaxTokens       int
	Temperature     float32
	InputTokenLimit int
}

type DeepgramConfig struct {
	APIKey     string
	APIBaseURL string
	Model      string
}

type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
	BaseURL string
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Insecure  bool
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Enabled reports whether enough is set to upload audio.
func (c S3Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// Load reads a .env file if present, then resolves the configuration from
// environment variables and defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(), nil
}

// FromEnv resolves the configuration from the current environment only.
func FromEnv() Config {
	cfg := Config{
		Server: ServerConfig{
			Port:           envOrDefaultInt("PORT", 5000),
			PortProbeLimit: envOrDefaultInt("PORT_PROBE_LIMIT", 20),
			AllowedOrigins: envList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RateLimitRPM:   envOrDefaultInt("RATE_LIMIT_RPM", 120),
			BodyLimitBytes: int64(envOrDefaultInt("BODY_LIMIT_MB", 50)) << 20,
			StaticDir:      strings.TrimSpace(os.Getenv("STATIC_DIR")),
		},
		Google: GoogleConfig{
			APIKey:          strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
			CredentialsFile: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
			SpeechEnabled:   envOrDefaultBool("GOOGLE_SPEECH_ENABLED", true),
		},
		OpenAI: OpenAIConfig{
			APIKey:          strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			BaseURL:         strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
			Model:           envOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
			MaxTokens:       envOrDefaultInt("OPENAI_MAX_TOKENS", 150),
			Temperature:     float32(envOrDefaultFloat("OPENAI_TEMPERATURE", 0.7)),
			InputTokenLimit: envOrDefaultInt("SUGGEST_INPUT_TOKEN_LIMIT", 512),
		},
		Deepgram: DeepgramConfig{
			APIKey:     strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")),
			APIBaseURL: envOrDefault("DEEPGRAM_API_BASE", "https://api.deepgram.com/v1"),
			Model:      envOrDefault("DEEPGRAM_MODEL", "nova-2"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  strings.TrimSpace(os.Getenv("ELEVENLABS_API_KEY")),
			VoiceID: strings.TrimSpace(os.Getenv("ELEVENLABS_VOICE_ID")),
			BaseURL: strings.TrimSpace(os.Getenv("ELEVENLABS_API_BASE")),
		},
		S3: S3Config{
			Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
			Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
			Region:    strings.TrimSpace(os.Getenv("S3_REGION")),
			Insecure:  envOrDefaultBool("S3_INSECURE", false),
		},
		Session: SessionConfig{
			IdleTTL:       time.Duration(envOrDefaultInt("SESSION_IDLE_TTL_MIN", 60)) * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.PortProbeLimit <= 0 {
		cfg.Server.PortProbeLimit = 1
	}
	if cfg.Server.BodyLimitBytes <= 0 {
		cfg.Server.BodyLimitBytes = 50 << 20
	}
	if cfg.OpenAI.MaxTokens <= 0 {
		cfg.OpenAI.MaxTokens = 150
	}
	if cfg.Session.IdleTTL <= 0 {
		cfg.Session.IdleTTL = time.Hour
	}

	return cfg
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func envList(key string, fallback []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig
	DB            DBConfig
	Redis         RedisConfig
	Logger        LoggerConfig
	JWT           JWTConfig
	GoogleOAuth   GoogleOAuthConfig
	Generation    GenerationConfig
	Transcription TranscriptionConfig
	Media         MediaConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Service  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GenerationConfig selects and configures the quiz generation backend.
// Source is either "gemini" or "ollama".
type GenerationConfig struct {
	Source string
	Gemini GeminiConfig
	Ollama OllamaConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

// TranscriptionConfig selects and configures the speech-to-text backend.
// Source is either "whisper_cpp" or "openai".
type TranscriptionConfig struct {
	Source     string
	WhisperCPP WhisperCPPConfig
	OpenAI     OpenAITranscriptionConfig
}

type WhisperCPPConfig struct {
	BinaryPath string
	ModelPath  string
}

type OpenAITranscriptionConfig struct {
	APIKey string
	Model  string
}

// MediaConfig configures audio acquisition.
type MediaConfig struct {
	YTDLPPath string
	TempDir   string
}

type CacheConfig struct {
	QuizDetailTTL time.Duration
	QuizListTTL   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("generation.source", "gemini")
	viper.SetDefault("generation.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("generation.ollama.model", "qwen3:0.6b")
	viper.SetDefault("transcription.source", "whisper_cpp")
	viper.SetDefault("transcription.whisper_cpp.binary_path", "whisper-cli")
	viper.SetDefault("transcription.openai.model", "whisper-1")
	viper.SetDefault("media.ytdlp_path", "yt-dlp")
	viper.SetDefault("media.temp_dir", os.TempDir())
	viper.SetDefault("cache.quiz_detail_ttl", time.Hour)
	viper.SetDefault("cache.quiz_list_ttl", 5*time.Minute)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Service:  viper.GetString("db.service"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		JWT: JWTConfig{
			SecretKey:       viper.GetString("jwt.secret_key"),
			AccessTokenTTL:  viper.GetDuration("jwt.access_token_ttl"),
			RefreshTokenTTL: viper.GetDuration("jwt.refresh_token_ttl"),
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     viper.GetString("google_oauth.client_id"),
			ClientSecret: viper.GetString("google_oauth.client_secret"),
			RedirectURL:  viper.GetString("google_oauth.redirect_url"),
		},
		Generation: GenerationConfig{
			Source: viper.GetString("generation.source"),
			Gemini: GeminiConfig{
				APIKey: viper.GetString("generation.gemini.api_key"),
				Model:  viper.GetString("generation.gemini.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("generation.ollama.server_url"),
				Model:     viper.GetString("generation.ollama.model"),
			},
		},
		Transcription: TranscriptionConfig{
			Source: viper.GetString("transcription.source"),
			WhisperCPP: WhisperCPPConfig{
				BinaryPath: viper.GetString("transcription.whisper_cpp.binary_path"),
				ModelPath:  viper.GetString("transcription.whisper_cpp.model_path"),
			},
			OpenAI: OpenAITranscriptionConfig{
				APIKey: viper.GetString("transcription.openai.api_key"),
				Model:  viper.GetString("transcription.openai.model"),
			},
		},
		Media: MediaConfig{
			YTDLPPath: viper.GetString("media.ytdlp_path"),
			TempDir:   viper.GetString("media.temp_dir"),
		},
		Cache: CacheConfig{
			QuizDetailTTL: viper.GetDuration("cache.quiz_detail_ttl"),
			QuizListTTL:   viper.GetDuration("cache.quiz_list_ttl"),
		},
	}

	// Environment overrides for deployment secrets.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Generation.Gemini.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.Transcription.OpenAI.APIKey = key
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if address := os.Getenv("REDIS_ADDRESS"); address != "" {
		config.Redis.Address = address
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Service,
	)
}

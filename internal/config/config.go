package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	JWT       JWTConfig       `yaml:"jwt"`
	SerpAPI   SerpAPIConfig   `yaml:"serpapi"`
	YouTube   YouTubeConfig   `yaml:"youtube"`
	GitHub    GitHubConfig    `yaml:"github"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	GeminiAI  GeminiAIConfig  `yaml:"gemini_ai" mapstructure:"gemini_ai"`
	Recommend RecommendConfig `yaml:"recommend"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type CORSConfig struct {
	AllowOrigins     []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods" mapstructure:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers" mapstructure:"allow_headers"`
	ExposeHeaders    []string `yaml:"expose_headers" mapstructure:"expose_headers"`
	AllowCredentials bool     `yaml:"allow_credentials" mapstructure:"allow_credentials"`
}

type JWTConfig struct {
	SecretKey string        `yaml:"secret_key" mapstructure:"secret_key"`
	Expiry    time.Duration `yaml:"expiry" mapstructure:"expiry"`
}

// SerpAPIConfig holds the key for the Google web-search provider. An empty
// key leaves the provider out of the engine.
type SerpAPIConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

type GitHubConfig struct {
	// Optional: unauthenticated search works at a lower rate limit.
	Token string `yaml:"token"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model"`
}

type GeminiAIConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

type RecommendConfig struct {
	MaxResults     int           `yaml:"max_results" mapstructure:"max_results"`
	MaxKeywords    int           `yaml:"max_keywords" mapstructure:"max_keywords"`
	CacheCapacity  int           `yaml:"cache_capacity" mapstructure:"cache_capacity"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

func LoadConfig(configPath string, envPath string) (*Config, error) {
	// .env is optional; deployed environments set real env vars instead.
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, err
		}
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("recommend.max_results", 15)
	viper.SetDefault("recommend.max_keywords", 5)
	viper.SetDefault("recommend.cache_capacity", 256)
	viper.SetDefault("recommend.request_timeout", 10*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	// Secrets come from the environment, not from the checked-in yaml.
	bindings := map[string]string{
		"database.url":      "DATABASE_URL",
		"jwt.secret_key":    "JWT_SECRET_KEY",
		"serpapi.api_key":   "SERP_API_KEY",
		"youtube.api_key":   "YOUTUBE_API_KEY",
		"github.token":      "GITHUB_TOKEN",
		"openai.api_key":    "OPENAI_API_KEY",
		"gemini_ai.api_key": "GEMINI_API_KEY",
	}
	for key, env := range bindings {
		if v := os.Getenv(env); v != "" {
			viper.Set(key, v)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Amap   AmapConfig
	LLM    LLMConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type AmapConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

// LLMBackend - один OpenAI-совместимый бэкенд для разбора запросов
type LLMBackend struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
}

type LLMConfig struct {
	// Backends перечислены в порядке приоритета
	Backends       []LLMBackend
	RequestTimeout time.Duration
}

type CORSConfig struct {
	Origins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален - все значения можно передать через окружение
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Amap: AmapConfig{
			APIKey:         viper.GetString("AMAP_API_KEY"),
			BaseURL:        viper.GetString("AMAP_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("AMAP_REQUEST_TIMEOUT")) * time.Second,
		},
		LLM: LLMConfig{
			RequestTimeout: time.Duration(viper.GetInt("LLM_REQUEST_TIMEOUT")) * time.Second,
		},
		CORS: CORSConfig{
			Origins: parseOrigins(viper.GetString("CORS_ORIGINS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Бэкенды LLM собираются в фиксированном порядке приоритета;
	// бэкенд без ключа не участвует в цепочке
	if key := viper.GetString("SILICONFLOW_API_KEY"); key != "" {
		cfg.LLM.Backends = append(cfg.LLM.Backends, LLMBackend{
			Name:    "siliconflow",
			APIKey:  key,
			BaseURL: defaultString(viper.GetString("SILICONFLOW_BASE_URL"), "https://api.siliconflow.cn/v1"),
			Model:   defaultString(viper.GetString("SILICONFLOW_MODEL"), "deepseek-ai/DeepSeek-R1-Distill-Qwen-7B"),
		})
	}
	if key := viper.GetString("DASHSCOPE_API_KEY"); key != "" {
		cfg.LLM.Backends = append(cfg.LLM.Backends, LLMBackend{
			Name:    "dashscope",
			APIKey:  key,
			BaseURL: defaultString(viper.GetString("DASHSCOPE_BASE_URL"), "https://dashscope.aliyuncs.com/compatible-mode/v1"),
			Model:   defaultString(viper.GetString("DASHSCOPE_MODEL"), "qwen-turbo"),
		})
	}
	if key := viper.GetString("OPENAI_API_KEY"); key != "" {
		cfg.LLM.Backends = append(cfg.LLM.Backends, LLMBackend{
			Name:    "openai",
			APIKey:  key,
			BaseURL: defaultString(viper.GetString("OPENAI_BASE_URL"), "https://api.openai.com/v1"),
			Model:   defaultString(viper.GetString("OPENAI_MODEL"), "gpt-3.5-turbo"),
		})
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Amap.BaseURL == "" {
		cfg.Amap.BaseURL = "https://restapi.amap.com/v3"
	}
	if cfg.Amap.RequestTimeout == 0 {
		cfg.Amap.RequestTimeout = 10 * time.Second
	}
	if cfg.LLM.RequestTimeout == 0 {
		cfg.LLM.RequestTimeout = 30 * time.Second
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

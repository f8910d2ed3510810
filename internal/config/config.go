package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// 运行环境：浏览器（web）与移动设备（device）使用不同的后端地址
const (
	ContextWeb    = "web"
	ContextDevice = "device"
)

// Config syntheo 客户端与 stub 后端配置
type Config struct {
	API struct {
		BaseURL       string `env:"API_BASE_URL"`
		WebBaseURL    string `env:"API_BASE_URL_WEB" envDefault:"http://localhost:8000/api"`
		DeviceBaseURL string `env:"API_BASE_URL_DEVICE" envDefault:"http://10.0.2.2:8000/api"`
		Context       string `env:"API_CONTEXT" envDefault:"web"`
		Token         string `env:"API_TOKEN"`

		UserListTimeout time.Duration `env:"USER_LIST_TIMEOUT" envDefault:"10s"`
		AckTimeout      time.Duration `env:"ACK_TIMEOUT" envDefault:"1s"`
	}

	Store StoreConfig

	Session struct {
		// 开发用：无法获取当前会话时登录为用户列表中的第一个用户
		DevFallback bool `env:"SESSION_DEV_FALLBACK" envDefault:"false"`
	}

	HTTP struct {
		Addr string `env:"HTTP_ADDR" envDefault:":8000"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"console"`
	}
}

// StoreConfig 本地持久化 KV 配置
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"file"` // file / redis / memory
	Path    string `env:"STORE_PATH"`
	Prefix  string `env:"STORE_PREFIX" envDefault:"syntheo:"`

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}
}

// Load 从 .env（可选）与环境变量加载配置
func Load() (*Config, error) {
	// .env 不存在时忽略，环境变量可能已经通过其他方式设置
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadFrom 使用给定的环境变量集合加载配置（测试用，不读取进程环境）
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验取值范围
func (c *Config) Validate() error {
	switch c.API.Context {
	case ContextWeb, ContextDevice:
	default:
		return fmt.Errorf("invalid API_CONTEXT %q (expected %q or %q)", c.API.Context, ContextWeb, ContextDevice)
	}
	switch c.Store.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q", c.Store.Backend)
	}
	if c.API.AckTimeout <= 0 {
		return fmt.Errorf("ACK_TIMEOUT must be positive")
	}
	return nil
}

// APIBaseURL 返回当前运行环境对应的后端地址；API_BASE_URL 优先
func (c *Config) APIBaseURL() string {
	if c.API.BaseURL != "" {
		return strings.TrimRight(c.API.BaseURL, "/")
	}
	if c.API.Context == ContextDevice {
		return strings.TrimRight(c.API.DeviceBaseURL, "/")
	}
	return strings.TrimRight(c.API.WebBaseURL, "/")
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "syntheo", "state.json")
	}
	return filepath.Join(home, ".syntheo", "state.json")
}

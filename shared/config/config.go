package config

import (
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Public holds settings that are safe to expose to any component.
type Public struct {
	ListenAddr        string `yaml:"listen_addr"`         // backend API bind address
	AdminListenAddr   string `yaml:"admin_listen_addr"`   // admin UI bind address
	APIBaseURL        string `yaml:"api_base_url"`        // where the admin UI reaches the API
	CorsAllowedOrigin string `yaml:"cors_allowed_origin"` // admin UI origin allowed to call the API
	SecureCookies     bool   `yaml:"secure_cookies"`
	LogLevel          string `yaml:"log_level"`
	LogJSON           bool   `yaml:"log_json"`
	LoginNoticePath   string `yaml:"login_notice_path"` // markdown shown on the login page, optional
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// Environment variables override the pg block from private.yaml, so
// deployments (and the seed tool's optional .env) can inject credentials
// without editing yaml.
func applyEnvOverrides(pg *Pg) {
	if v := os.Getenv("PG_HOST"); v != "" {
		pg.Host = v
	}
	if v := os.Getenv("PG_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic("invalid PG_PORT env variable: " + v)
		}
		pg.Port = port
	}
	if v := os.Getenv("PG_USER"); v != "" {
		pg.User = v
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		pg.Password = v
	}
	if v := os.Getenv("PG_DBNAME"); v != "" {
		pg.Dbname = v
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	applyEnvOverrides(&private.Pg)

	return &Config{public, private}
}

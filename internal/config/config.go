package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config gathers everything the CLI and the HTTP server need.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Log       LogConfig       `mapstructure:"log"`
	Catalogue CatalogueConfig `mapstructure:"catalogue"`
}

type ServerConfig struct {
	ListenAddr    string `mapstructure:"listen_addr"`
	GinMode       string `mapstructure:"gin_mode"`
	SessionSecret string `mapstructure:"session_secret"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type UploadConfig struct {
	Dir     string `mapstructure:"dir"`
	URLPath string `mapstructure:"url_path"`
}

// AdminConfig seeds the first admin account. Empty values skip seeding.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CatalogueConfig struct {
	SearchLimit int `mapstructure:"search_limit"`
	PageSize    int `mapstructure:"page_size"`
}

// Load reads the optional config file at path, then overlays environment
// variables with the SWEETBLISS_ prefix (e.g. SWEETBLISS_DATABASE_DSN).
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SWEETBLISS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.session_secret", "sweetbliss-dev-secret")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "sweetbliss.db")

	v.SetDefault("upload.dir", "web/static/uploads")
	v.SetDefault("upload.url_path", "/static/uploads")

	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("catalogue.search_limit", 20)
	v.SetDefault("catalogue.page_size", 12)
}

// normalize trims values and restores defaults that were blanked out.
func (c *Config) normalize() {
	c.Server.ListenAddr = fallback(c.Server.ListenAddr, ":8080")
	c.Server.GinMode = fallback(c.Server.GinMode, "release")
	c.Server.SessionSecret = fallback(c.Server.SessionSecret, "sweetbliss-dev-secret")
	c.Database.Driver = strings.ToLower(fallback(c.Database.Driver, "sqlite"))
	c.Database.DSN = fallback(c.Database.DSN, "sweetbliss.db")
	c.Upload.Dir = fallback(c.Upload.Dir, "web/static/uploads")
	c.Upload.URLPath = "/" + strings.Trim(fallback(c.Upload.URLPath, "/static/uploads"), "/")
	c.Admin.Username = strings.TrimSpace(c.Admin.Username)
	c.Admin.Password = strings.TrimSpace(c.Admin.Password)
	c.Log.Level = strings.ToLower(fallback(c.Log.Level, "info"))
	c.Log.Format = strings.ToLower(fallback(c.Log.Format, "console"))
	if c.Catalogue.SearchLimit <= 0 {
		c.Catalogue.SearchLimit = 20
	}
	if c.Catalogue.PageSize <= 0 {
		c.Catalogue.PageSize = 12
	}
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}

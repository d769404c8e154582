package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"

	"kindlyrss/internal/logger"
)

const (
	AppName    = "KindlyRSS"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/nicoan/kindlyrss"
)

// DefaultUserAgent identifies the reader when fetching feeds, pages and images.
var DefaultUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

// Chrome headers for TLS fingerprinting (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// Extractor strategies accepted by Config.Extractor.
const (
	ExtractorTags            = "tags"
	ExtractorReadability     = "readability"
	ExtractorTagsReadability = "tags+readability"
)

// UnlimitedDownloads disables the per-sync full page download quota.
const UnlimitedDownloads = -1

var defaultFiles = []string{"./kindlyrss.hcl", "/etc/kindlyrss/kindlyrss.hcl"}

type Config struct {
	Addr      string `hcl:"addr" env:"ADDR" default:"0.0.0.0:3000"`
	DataDir   string `hcl:"data_dir" env:"DATA_DIR" default:"/var/lib/kindlyrss"`
	StaticDir string `hcl:"static_dir" env:"STATIC_DIR" default:"/usr/share/kindlyrss"`
	DBPath    string `hcl:"db_path" env:"DB_PATH"`
	LogLevel  string `hcl:"log_level" env:"LOG_LEVEL" default:"info"`

	RefreshInterval        time.Duration `hcl:"refresh_interval" env:"REFRESH_INTERVAL" default:"30m"`
	MaxArticlesToDownload  int           `hcl:"max_articles_to_download" env:"MAX_ARTICLES_TO_DOWNLOAD" default:"10"`
	BackgroundSyncInterval time.Duration `hcl:"background_sync_interval" env:"BACKGROUND_SYNC_INTERVAL" default:"0s"`
	Extractor              string        `hcl:"extractor" env:"EXTRACTOR" default:"tags"`

	ImagePublicPrefix string        `hcl:"image_public_prefix" env:"IMAGE_PUBLIC_PREFIX" default:"/images"`
	ImagePlaceholder  string        `hcl:"image_placeholder" env:"IMAGE_PLACEHOLDER" default:"/static/error_processing_image.png"`
	ImageHostInterval time.Duration `hcl:"image_host_interval" env:"IMAGE_HOST_INTERVAL" default:"0s"`

	FetchTimeout time.Duration `hcl:"fetch_timeout" env:"FETCH_TIMEOUT" default:"30s"`
	MaxBodyBytes int64         `hcl:"max_body_bytes" env:"MAX_BODY_BYTES" default:"20971520"`
	ProxyURL     string        `hcl:"proxy_url" env:"PROXY_URL"`
	BrowserTLS   bool          `hcl:"browser_tls" env:"BROWSER_TLS" default:"false"`

	SnowflakeNode int64 `hcl:"snowflake_node" env:"SNOWFLAKE_NODE" default:"1"`
}

// Load reads defaults, then the first config file found, then KINDLYRSS_* env vars.
// An explicit path replaces the default file search list.
func Load(path string) (Config, error) {
	var cfg Config

	files := defaultFiles
	if strings.TrimSpace(path) != "" {
		files = []string{path}
	}

	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "KINDLYRSS",
		SkipFlags: true,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.DataDir = filepath.Clean(c.DataDir)
	c.StaticDir = filepath.Clean(c.StaticDir)
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = filepath.Join(c.DataDir, "database.db")
	}
	c.DBPath = filepath.Clean(c.DBPath)
	c.ImagePublicPrefix = "/" + strings.Trim(c.ImagePublicPrefix, "/")
	c.Extractor = strings.ToLower(strings.TrimSpace(c.Extractor))
	if c.MaxArticlesToDownload < 0 {
		c.MaxArticlesToDownload = UnlimitedDownloads
	}
}

// Validate reports settings the rest of the application cannot work with.
func (c Config) Validate() error {
	switch c.Extractor {
	case ExtractorTags, ExtractorReadability, ExtractorTagsReadability:
	default:
		return fmt.Errorf("invalid extractor %q", c.Extractor)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must not be negative")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		return fmt.Errorf("snowflake_node must be within 0-1023")
	}
	return nil
}

// ImagesDir is where downloaded article images are written.
func (c Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

// ArticlesDir is where processed article content is written.
func (c Config) ArticlesDir() string {
	return filepath.Join(c.DataDir, "articles")
}

// LockPath guards the data directory against a second server process.
func (c Config) LockPath() string {
	return filepath.Join(c.DataDir, "kindlyrss.lock")
}

// Print logs the effective configuration.
func (c Config) Print() {
	logger.Info("configuration loaded",
		"module", "config",
		"action", "load",
		"resource", "config",
		"result", "ok",
		"addr", c.Addr,
		"data_dir", c.DataDir,
		"static_dir", c.StaticDir,
		"db_path", c.DBPath,
		"refresh_interval", c.RefreshInterval.String(),
		"max_articles_to_download", c.MaxArticlesToDownload,
		"background_sync_interval", c.BackgroundSyncInterval.String(),
		"extractor", c.Extractor,
		"browser_tls", c.BrowserTLS,
		"proxy", c.ProxyURL != "",
	)
}

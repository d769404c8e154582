package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:3000", cfg.Addr)
	require.Equal(t, "/var/lib/kindlyrss", cfg.DataDir)
	require.Equal(t, filepath.Join("/var/lib/kindlyrss", "database.db"), cfg.DBPath)
	require.Equal(t, 30*time.Minute, cfg.RefreshInterval)
	require.Equal(t, 10, cfg.MaxArticlesToDownload)
	require.Equal(t, config.ExtractorTags, cfg.Extractor)
	require.Equal(t, "/images", cfg.ImagePublicPrefix)
	require.Equal(t, "/static/error_processing_image.png", cfg.ImagePlaceholder)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("KINDLYRSS_DATA_DIR", dataDir)
	t.Setenv("KINDLYRSS_REFRESH_INTERVAL", "5m")
	t.Setenv("KINDLYRSS_MAX_ARTICLES_TO_DOWNLOAD", "-7")
	t.Setenv("KINDLYRSS_IMAGE_PUBLIC_PREFIX", "media/")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	require.Equal(t, dataDir, cfg.DataDir)
	require.Equal(t, filepath.Join(dataDir, "database.db"), cfg.DBPath)
	require.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	require.Equal(t, config.UnlimitedDownloads, cfg.MaxArticlesToDownload)
	require.Equal(t, "/media", cfg.ImagePublicPrefix)
	require.Equal(t, filepath.Join(dataDir, "images"), cfg.ImagesDir())
	require.Equal(t, filepath.Join(dataDir, "articles"), cfg.ArticlesDir())
}

func TestLoad_HCLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kindlyrss.hcl")
	content := `
addr = "127.0.0.1:9000"
extractor = "tags+readability"
max_articles_to_download = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)
	require.Equal(t, config.ExtractorTagsReadability, cfg.Extractor)
	require.Equal(t, 3, cfg.MaxArticlesToDownload)
}

func TestLoad_InvalidExtractor(t *testing.T) {
	t.Setenv("KINDLYRSS_EXTRACTOR", "magic")
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid extractor")
}

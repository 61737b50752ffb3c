package sniffkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Directory for scoped-lifetime upload copies (os.TempDir when empty)
	TempDir string `env:"SNIFFKIT_TEMP_DIR"`

	// Maximum accepted upload size in bytes
	MaxUploadSize int64 `env:"SNIFFKIT_MAX_UPLOAD_SIZE,default:104857600"` // 100MB default

	// Checksum algorithm reported for inspected files
	Checksum string `env:"SNIFFKIT_CHECKSUM,default:xxhash"`

	// HTTP inspection server
	ListenAddr string `env:"SNIFFKIT_LISTEN_ADDR,default::8421"`

	// Maximum archive entries listed in a preview
	PreviewEntries int `env:"SNIFFKIT_PREVIEW_ENTRIES,default:20"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

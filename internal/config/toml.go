package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the TOML file. Pointer fields distinguish an absent
// key from a zero value.
type FileConfig struct {
	Storage StorageSection `toml:"storage"`
	Log     LogSection     `toml:"log"`
	Server  ServerSection  `toml:"server"`
	History HistorySection `toml:"history"`
}

type StorageSection struct {
	DB *string `toml:"db"`
}

type LogSection struct {
	Level  *string `toml:"level"`
	File   *string `toml:"file"`
	JSON   *bool   `toml:"json"`
	Stderr *bool   `toml:"stderr"`
}

type ServerSection struct {
	Addr        *string `toml:"addr"`
	MetricsAddr *string `toml:"metrics_addr"`
}

type HistorySection struct {
	Days *int `toml:"days"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("decode config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytget/splitdesk/internal/platform"
)

// Override sources
const (
	EnvPrefix          = "SPLITDESK"
	OverridesFileName  = "splitdesk"
	OverridesFileType  = "toml"
	EnvOverridesConfig = "SPLITDESK_CONFIG"
)

// Overrides holds values from the environment or an optional TOML file.
// Empty fields leave the stored preference in effect.
type Overrides struct {
	LayoutFile string `mapstructure:"layout_file"`
	Desktop    string `mapstructure:"desktop"`
	Language   string `mapstructure:"language"`
	Strict     *bool  `mapstructure:"strict"`
}

// LoadOverrides reads overrides from configPath (or SPLITDESK_CONFIG, or
// splitdesk.toml in the user config directory) and from SPLITDESK_* env vars.
// A missing file is not an error.
func LoadOverrides(configPath string) (Overrides, error) {
	v := viper.New()
	v.SetConfigType(OverridesFileType)

	if configPath == "" {
		configPath = strings.TrimSpace(os.Getenv(EnvOverridesConfig))
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if dir, err := platform.GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(OverridesFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"layout_file", "desktop", "language", "strict"} {
		if err := v.BindEnv(key); err != nil {
			return Overrides{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !platformMissing(configPath) {
			return Overrides{}, fmt.Errorf("read overrides: %w", err)
		}
	}

	var o Overrides
	if err := v.Unmarshal(&o); err != nil {
		return Overrides{}, fmt.Errorf("unmarshal overrides: %w", err)
	}
	return o, nil
}

// platformMissing reports whether an explicitly named file does not exist
func platformMissing(path string) bool {
	return path != "" && !platform.FileExists(path)
}

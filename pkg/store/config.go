package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk state database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data path from a .lifeos config file, LIFEOS_*
// environment variables, or the default location under the home directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.lifeos.db")
	viper.SetConfigName(".lifeos") // .yaml is implicit
	viper.SetEnvPrefix("LIFEOS")
	viper.AutomaticEnv()

	if override := os.Getenv("LIFEOS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

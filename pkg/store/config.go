package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where the collection lives.
type Config interface {
	BasePath() string
	Backend() string
	Name() string
}

// LoadConfig reads .todo.yaml from TODO_CONFIG_PATH or the working directory,
// overlaid with TODO_* environment variables and any flags bound to viper.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.todo.db")
	viper.SetDefault("backend", BackendDiskv)
	viper.SetDefault("name", "todos")
	viper.SetConfigName(".todo") // .yaml is implicit
	viper.SetEnvPrefix("TODO")
	viper.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:        path,
		BackendName: viper.GetString("backend"),
		Collection:  viper.GetString("name"),
	}, nil
}

// NewConfig returns a fixed Config.
func NewConfig(path, backend, name string) Config {
	return &fileConfig{Path: path, BackendName: backend, Collection: name}
}

type fileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	Collection  string `json:"name"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.BackendName
}

func (f *fileConfig) Name() string {
	return f.Collection
}

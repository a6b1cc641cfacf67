package store

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where local state lives and which backend to talk to.
type Config interface {
	BasePath() string
	APIBase() string
}

const defaultAPIBase = "http://127.0.0.1:8000"

func LoadConfig() (Config, error) {
	// A .env next to the working directory wins over the environment,
	// matching how the backend project configures itself locally.
	_ = godotenv.Load()

	viper.SetDefault("path", "~/.moodcal.db")
	viper.SetDefault("api", defaultAPIBase)
	viper.SetConfigName(".moodcal") // .yaml is implicit
	viper.SetEnvPrefix("MOODCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, API: viper.GetString("api")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	API  string `json:"api"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) APIBase() string {
	return f.API
}

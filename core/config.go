package core

import (
	"fmt"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env               string `yaml:"env" env:"ENV" env-default:"local"`
	Port              string `yaml:"port" env:"PORT" env-default:"3000"`
	LineChannelToken  string `yaml:"line_channel_access_token" env:"LINE_CHANNEL_ACCESS_TOKEN" env-default:""`
	LineChannelSecret string `yaml:"line_channel_secret" env:"LINE_CHANNEL_SECRET" env-default:""`
	ClaudeApiKey      string `yaml:"claude_api_key" env:"CLAUDE_API_KEY" env-default:""`
	UploadDir         string `yaml:"upload_dir" env:"UPLOAD_DIR" env-default:"uploads"`
	Mongo             struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:""`
	}
}

var instance *Config
var once sync.Once

func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		// config file is optional, environment alone is enough
		if _, statErr := os.Stat(path); statErr == nil {
			err = cleanenv.ReadConfig(path, instance)
		} else {
			err = cleanenv.ReadEnv(instance)
		}
		if err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("config: %s; %s", err, desc)
			instance = nil
		}
	})
	return instance, err
}

func MustLoad(path string) *Config {
	conf, err := GetConfig(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return conf
}

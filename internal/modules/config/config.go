package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const configFilePathENV = "CONFIG_FILE"

// Config ...
type Config struct {
	Liquid struct {
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
		BaseURL   string `yaml:"base_url"`
		AccountID string `yaml:"account_id"`
	} `yaml:"liquid"`
	LogLevel string `yaml:"log_level"`
	Jaeger   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`
}

// NewConfig читает необязательный yaml-файл (путь в CONFIG_FILE),
// поверх накатывает переменные окружения LIQUID_* и проверяет,
// что все четыре обязательных поля заполнены.
func NewConfig() (*Config, error) {
	config := Config{}
	config.LogLevel = "info"

	if configFileName := os.Getenv(configFilePathENV); configFileName != "" {
		file, err := os.Open(configFileName)
		if err != nil {
			return nil, errors.Wrap(err, "open config file")
		}
		defer func() {
			_ = file.Close()
		}()
		if dErr := yaml.NewDecoder(file).Decode(&config); dErr != nil {
			return nil, errors.Wrap(dErr, "decode config file")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	if s := v.GetString("LIQUID_UN"); s != "" {
		config.Liquid.Username = s
	}
	if s := v.GetString("LIQUID_PW"); s != "" {
		config.Liquid.Password = s
	}
	if s := v.GetString("LIQUID_API_BASE_URL"); s != "" {
		config.Liquid.BaseURL = s
	}
	if s := v.GetString("LIQUID_ACCOUNT_ID"); s != "" {
		config.Liquid.AccountID = s
	}
	if s := v.GetString("LIQUID_LOG_LEVEL"); s != "" {
		config.LogLevel = s
	}
	if s := v.GetString("JAEGER_HOST"); s != "" {
		config.Jaeger.Host = s
	}
	if p := v.GetInt("JAEGER_PORT"); p != 0 {
		config.Jaeger.Port = p
	}

	if config.Liquid.Username == "" || config.Liquid.Password == "" ||
		config.Liquid.BaseURL == "" || config.Liquid.AccountID == "" {
		return nil, errors.New("liquid credentials are not fully configured (username/password/base_url/account_id)")
	}

	return &config, nil
}

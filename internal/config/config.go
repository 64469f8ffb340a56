package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

type MainConfig struct {
	AppName   string `toml:"appName"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	EnableTls bool   `toml:"enableTls"`
}

type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

type LogConfig struct {
	LogPath string `toml:"logPath"`
}

type JwtConfig struct {
	Key    string `toml:"key"`
	Issuer string `toml:"issuer"`
}

type RedisConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	PoolSize     int    `toml:"poolSize"`
	MinIdleConns int    `toml:"minIdleConns"`
}

type ChatConfig struct {
	PreviewLength int `toml:"previewLength"`
	HistoryLimit  int `toml:"historyLimit"`
	RoomsLimit    int `toml:"roomsLimit"`
}

// PreviewLengthOrDefault bounds the conversation preview column width.
func (c ChatConfig) PreviewLengthOrDefault() int {
	if c.PreviewLength <= 0 {
		return 120
	}
	return c.PreviewLength
}

func (c ChatConfig) HistoryLimitOrDefault() int {
	if c.HistoryLimit <= 0 {
		return 200
	}
	return c.HistoryLimit
}

func (c ChatConfig) RoomsLimitOrDefault() int {
	if c.RoomsLimit <= 0 {
		return 50
	}
	return c.RoomsLimit
}

type Config struct {
	MainConfig  `toml:"mainConfig"`
	MysqlConfig `toml:"mysqlConfig"`
	JwtConfig   `toml:"jwtConfig"`
	LogConfig   `toml:"logConfig"`
	RedisConfig `toml:"redisConfig"`
	ChatConfig  `toml:"chatConfig"`
}

var config *Config

func LoadConfig() error {
	configPath := "configs/config_local.toml"
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Printf("failed to load config file: %v, falling back to defaults", err)
		return err
	}
	return nil
}

func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}

package providers

import (
	"drinkdays/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8087)
	v.SetDefault("storage.recordsKey", "drinkdays_records")
	v.SetDefault("storage.settingsKey", "drinkdays_settings")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.ttl", 3600)

	v.BindEnv("logger.level", "DRINKDAYS_LOG_LEVEL")
	v.BindEnv("storage.dir", "DRINKDAYS_STORAGE_DIR")
	v.BindEnv("settings.locale", "DRINKDAYS_LOCALE")
	v.BindEnv("cache.enabled", "DRINKDAYS_CACHE_ENABLED")
	v.BindEnv("cache.size", "DRINKDAYS_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DrinkDays"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

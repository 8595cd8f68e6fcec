// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	AccountsFile       string        `mapstructure:"ACCOUNTS_FILE"`
	SessionIdleTimeout time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	PriceAPIBaseURL    string        `mapstructure:"PRICE_API_BASE_URL"`
	PriceFetchTimeout  time.Duration `mapstructure:"PRICE_FETCH_TIMEOUT"`
	BonusMinUSD        int           `mapstructure:"BONUS_MIN_USD"`
	BonusMaxUSD        int           `mapstructure:"BONUS_MAX_USD"`
	Environement       string        `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

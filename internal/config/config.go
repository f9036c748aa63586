package config

import "github.com/spf13/viper"

// Config holds all configuration for the application, populated by viper
// from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	CityDataFile  string `mapstructure:"CITY_DATA_FILE"`
}

// LoadConfig reads configuration from the app.env file in path. Environment
// variables with matching names take precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

// Millis reads an integer setting expressed in milliseconds.
func Millis(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Millisecond
}

// Seconds reads an integer setting expressed in seconds.
func Seconds(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Second
}

// Hours reads an integer setting expressed in hours.
func Hours(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Hour
}

// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the settings of a single substitution query, bound from
// command line flags through Viper
type Config struct {
	// the codon position to restrict the search to (0 = all positions)
	Position int `mapstructure:"position"`

	// whether to print a full report instead of tab-separated rows
	Verbose bool `mapstructure:"verbose"`
}

// New returns a Config populated by the Viper settings bound in /cmd
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

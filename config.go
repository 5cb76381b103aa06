// config.go
//
// Process-level configuration for cmd/lexserve: listen address, dictionary
// paths, board type, log level, loaded via viper from defaults, an optional
// config file and environment variables (no command-line flags) —
// the way the pack's macondo-family CLI tools configure themselves. The
// teacher has no equivalent (it hardcodes its dictionary choices); this is
// new per SPEC_FULL.md §2's Config component.

package lexengine

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is cmd/lexserve's process configuration.
type Config struct {
	ListenAddr    string
	WordListPath  string
	BoardType     string
	LogLevel      string
	GameReapDelay string
}

// LoadConfig reads configuration from (in ascending priority) defaults, an
// optional ./lexengine.yaml, and LEXENGINE_-prefixed environment
// variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("lexengine")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("board_type", "standard")
	v.SetDefault("log_level", "info")
	v.SetDefault("game_reap_delay", "10m")

	v.SetConfigName("lexengine")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errEngineFault("reading config file: %v", err)
		}
	}

	return &Config{
		ListenAddr:    v.GetString("listen_addr"),
		WordListPath:  v.GetString("word_list_path"),
		BoardType:     v.GetString("board_type"),
		LogLevel:      v.GetString("log_level"),
		GameReapDelay: v.GetString("game_reap_delay"),
	}, nil
}

package config

import (
	"github.com/spf13/viper"

	"github.com/rickcrawford/tokenwc/internal/tokenizer"
)

// Config holds all tokenwc configuration.
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	MCP       MCPConfig       `mapstructure:"mcp"`
}

type TokenizerConfig struct {
	// Name selects a shipped tokenizer or one discoverable in SearchDirs.
	Name string `mapstructure:"name"`
	// Path points at a HuggingFace tokenizer.json; takes precedence
	// over Name when set.
	Path       string   `mapstructure:"path"`
	SearchDirs []string `mapstructure:"search_dirs"`
}

type MCPConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from the given file path (or default
// locations) and environment variables, then unmarshals into a Config.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.tokenwc")
		viper.AddConfigPath("/etc/tokenwc")
	}

	// Environment variable overrides (e.g. TOKENWC_TOKENIZER_NAME)
	viper.SetEnvPrefix("TOKENWC")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("tokenizer.name", tokenizer.DefaultName)
	viper.SetDefault("tokenizer.path", "")
	viper.SetDefault("tokenizer.search_dirs", tokenizer.DefaultSearchDirs())
	viper.SetDefault("mcp.addr", ":8081")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Game     GameConfig     `mapstructure:"game"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig configures the WebSocket gateway.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig configures match rules.
type GameConfig struct {
	TotalRounds     int `mapstructure:"total_rounds"`
	WinsRequired    int `mapstructure:"wins_required"`
	OpeningHandSize int `mapstructure:"opening_hand_size"`
	RoundDealSize   int `mapstructure:"round_deal_size"`
}

// DatabaseConfig configures the optional match-result store. An empty
// URL disables persistence.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads configuration from the given YAML file, environment
// variables (QUINT_ prefix, e.g. QUINT_SERVER_ADDRESS) and built-in
// defaults, in that order of precedence from highest to lowest for env
// over file. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("game.total_rounds", 3)
	v.SetDefault("game.wins_required", 2)
	v.SetDefault("game.opening_hand_size", 6)
	v.SetDefault("game.round_deal_size", 2)
	v.SetDefault("database.url", "")

	v.SetEnvPrefix("QUINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Game.TotalRounds <= 0 {
		return fmt.Errorf("game.total_rounds must be positive, got %d", c.Game.TotalRounds)
	}
	if c.Game.WinsRequired <= 0 || c.Game.WinsRequired > c.Game.TotalRounds {
		return fmt.Errorf("game.wins_required must be in [1, %d], got %d", c.Game.TotalRounds, c.Game.WinsRequired)
	}
	if c.Game.OpeningHandSize <= 0 {
		return fmt.Errorf("game.opening_hand_size must be positive, got %d", c.Game.OpeningHandSize)
	}
	if c.Game.RoundDealSize <= 0 {
		return fmt.Errorf("game.round_deal_size must be positive, got %d", c.Game.RoundDealSize)
	}
	return nil
}

package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed            int64     `mapstructure:"seed"`
	ItemCatalog     []string  `mapstructure:"item_catalog"`
	StallPositions  []float64 `mapstructure:"stall_positions"`
	ItemsPerStall   int       `mapstructure:"items_per_stall"`
	ShopperCount    int       `mapstructure:"shopper_count"`
	MaxListSize     int       `mapstructure:"max_list_size"`
	WalkingSpeed    float64   `mapstructure:"walking_speed"`
	SpaceHalfWidthX float64   `mapstructure:"space_half_width_x"`
	SpaceHalfWidthY float64   `mapstructure:"space_half_width_y"`
	ArrivalRadius   float64   `mapstructure:"arrival_radius"`
	MaxTimeSteps    int       `mapstructure:"max_time_steps"`
	PathCount       int       `mapstructure:"path_count"`
	Workers         int       `mapstructure:"workers"`
	OutputFormat    string    `mapstructure:"output_format"`
	OutputPath      string    `mapstructure:"output_path"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		// a config file is optional unless one was named explicitly
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if len(config.ItemCatalog) == 0 {
		config.ItemCatalog = DefaultItemCatalog
	}
	if len(config.StallPositions) == 0 {
		config.StallPositions = DefaultStallPositions
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks every precondition once, before any path runs.
func (cfg *Config) Validate() error {
	if len(cfg.ItemCatalog) == 0 {
		return fmt.Errorf("item catalog is empty")
	}
	seen := make(map[string]bool, len(cfg.ItemCatalog))
	for _, item := range cfg.ItemCatalog {
		if seen[item] {
			return fmt.Errorf("duplicate item %q in catalog", item)
		}
		seen[item] = true
	}
	if len(cfg.StallPositions) == 0 {
		return fmt.Errorf("stall position sequence is empty")
	}
	positions := make(map[float64]bool, len(cfg.StallPositions))
	for _, x := range cfg.StallPositions {
		if positions[x] {
			return fmt.Errorf("duplicate stall position %v", x)
		}
		positions[x] = true
	}
	if cfg.ItemsPerStall <= 0 || cfg.ItemsPerStall > len(cfg.ItemCatalog) {
		return fmt.Errorf("items per stall %d must be in 1..%d", cfg.ItemsPerStall, len(cfg.ItemCatalog))
	}
	if cfg.MaxListSize <= 0 || cfg.MaxListSize > len(cfg.ItemCatalog) {
		return fmt.Errorf("max shopping list size %d must be in 1..%d", cfg.MaxListSize, len(cfg.ItemCatalog))
	}
	if cfg.ShopperCount <= 0 {
		return fmt.Errorf("shopper count must be positive, got %d", cfg.ShopperCount)
	}
	if cfg.WalkingSpeed <= 0 {
		return fmt.Errorf("walking speed must be positive, got %v", cfg.WalkingSpeed)
	}
	if cfg.SpaceHalfWidthX <= 0 || cfg.SpaceHalfWidthY <= 0 {
		return fmt.Errorf("space half-widths must be positive, got (%v, %v)", cfg.SpaceHalfWidthX, cfg.SpaceHalfWidthY)
	}
	if cfg.ArrivalRadius <= 0 {
		return fmt.Errorf("arrival radius must be positive, got %v", cfg.ArrivalRadius)
	}
	if cfg.MaxTimeSteps <= 0 {
		return fmt.Errorf("time budget must be positive, got %d", cfg.MaxTimeSteps)
	}
	if cfg.PathCount <= 0 {
		return fmt.Errorf("path count must be positive, got %d", cfg.PathCount)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return nil
}

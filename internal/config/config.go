// Package config handles configuration loading for crewcoord.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for crewcoord.
type Config struct {
	Crew         CrewConfig         `mapstructure:"crew" yaml:"crew"`
	Coordination CoordinationConfig `mapstructure:"coordination" yaml:"coordination"`
	Sync         SyncConfig         `mapstructure:"sync" yaml:"sync"`
	Storage      StorageConfig      `mapstructure:"storage" yaml:"storage"`
}

// CrewConfig holds capacity accounting settings.
type CrewConfig struct {
	// WeeklyCapacityHours is the hours of capacity behind 100% availability.
	WeeklyCapacityHours float64 `mapstructure:"weekly_capacity_hours" yaml:"weekly_capacity_hours"`
	// MinAvailability is the availability floor for team selection (0-100).
	MinAvailability float64 `mapstructure:"min_availability" yaml:"min_availability"`
	// RosterPath points to a YAML roster file; empty uses the built-in roster.
	RosterPath string `mapstructure:"roster_path" yaml:"roster_path"`
}

// CoordinationConfig holds planning settings.
type CoordinationConfig struct {
	// MaxAccelerationFactor is the speed multiplier at synergy 100.
	MaxAccelerationFactor float64 `mapstructure:"max_acceleration_factor" yaml:"max_acceleration_factor"`
	// CrossProjectMultiplier scales time savings on cross-project opportunities.
	CrossProjectMultiplier float64 `mapstructure:"cross_project_multiplier" yaml:"cross_project_multiplier"`
	// MaxTeamSize caps per-project team size.
	MaxTeamSize int `mapstructure:"max_team_size" yaml:"max_team_size"`
	// MaxCrossTeamSize caps cross-project team size.
	MaxCrossTeamSize int `mapstructure:"max_cross_team_size" yaml:"max_cross_team_size"`
	// KeywordTablePath points to a YAML skill-keyword table; empty uses defaults.
	KeywordTablePath string `mapstructure:"keyword_table_path" yaml:"keyword_table_path"`
}

// SyncConfig holds state sync settings.
type SyncConfig struct {
	// Interval is the periodic sync cadence.
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	// ConflictPolicy selects the resolution strategy: client_wins, server_wins, or merge.
	ConflictPolicy string `mapstructure:"conflict_policy" yaml:"conflict_policy"`
	// TimestampThreshold is the window within which timestamps count as equal.
	TimestampThreshold time.Duration `mapstructure:"timestamp_threshold" yaml:"timestamp_threshold"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// Path is the sqlite database path; empty uses the XDG data path.
	Path string `mapstructure:"path" yaml:"path"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
//  1. Environment variables (CREWCOORD_*)
//  2. Project config (.crewcoord.yaml in current directory or parent)
//  3. User config (~/.config/crewcoord/config.yaml)
//  4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Project config takes precedence over user config.
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("CREWCOORD")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// DataDir returns the XDG data directory for crewcoord.
func DataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "crewcoord")
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("crew.weekly_capacity_hours", 40.0)
	v.SetDefault("crew.min_availability", 50.0)
	v.SetDefault("crew.roster_path", "")

	v.SetDefault("coordination.max_acceleration_factor", 2.0)
	v.SetDefault("coordination.cross_project_multiplier", 2.0)
	v.SetDefault("coordination.max_team_size", 3)
	v.SetDefault("coordination.max_cross_team_size", 4)
	v.SetDefault("coordination.keyword_table_path", "")

	v.SetDefault("sync.interval", "30s")
	v.SetDefault("sync.conflict_policy", "merge")
	v.SetDefault("sync.timestamp_threshold", "1s")

	v.SetDefault("storage.path", "")
}

// getUserConfigDir returns the XDG config directory for crewcoord.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "crewcoord")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "crewcoord")
	}
	return filepath.Join(home, ".config", "crewcoord")
}

// findProjectConfig searches for .crewcoord.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".crewcoord.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Crew: CrewConfig{
			WeeklyCapacityHours: 40.0,
			MinAvailability:     50.0,
		},
		Coordination: CoordinationConfig{
			MaxAccelerationFactor:  2.0,
			CrossProjectMultiplier: 2.0,
			MaxTeamSize:            3,
			MaxCrossTeamSize:       4,
		},
		Sync: SyncConfig{
			Interval:           30 * time.Second,
			ConflictPolicy:     "merge",
			TimestampThreshold: time.Second,
		},
	}
}

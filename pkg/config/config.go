/*
Package config manages the wsolve config file.

The file is TOML by default; a path ending in .yaml or .yml is read and
written as YAML instead. After the file is decoded, WSOLVE_* environment
variables override individual values.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/layout"
	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultFileName is the config file created in the config dir.
const DefaultFileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict" yaml:"dict"`
	Lookup LookupConfig `toml:"lookup" yaml:"lookup"`
	Jumble JumbleConfig `toml:"jumble" yaml:"jumble"`
	Server ServerConfig `toml:"server" yaml:"server"`
}

// DictConfig holds the data files. Relative file names resolve against Dir.
type DictConfig struct {
	Dir             string `toml:"dir" yaml:"dir" env:"WSOLVE_DATA_DIR"`
	Obscurity       int    `toml:"obscurity" yaml:"obscurity" env:"WSOLVE_OBSCURITY"`
	IncludePhrases  bool   `toml:"include_phrases" yaml:"include_phrases" env:"WSOLVE_INCLUDE_PHRASES"`
	ThesaurusFile   string `toml:"thesaurus_file" yaml:"thesaurus_file" env:"WSOLVE_THESAURUS_FILE"`
	DefinitionsFile string `toml:"definitions_file" yaml:"definitions_file" env:"WSOLVE_DEFINITIONS_FILE"`
	WordsetFile     string `toml:"wordset_file" yaml:"wordset_file" env:"WSOLVE_WORDSET_FILE"`
}

// LookupConfig holds search and output options.
type LookupConfig struct {
	ParallelWorkers int  `toml:"parallel_workers" yaml:"parallel_workers" env:"WSOLVE_WORKERS"`
	Narrow          bool `toml:"narrow" yaml:"narrow" env:"WSOLVE_NARROW"`
	ExcludePhrases  bool `toml:"exclude_phrases" yaml:"exclude_phrases" env:"WSOLVE_EXCLUDE_PHRASES"`
}

// JumbleConfig holds letter layout options.
type JumbleConfig struct {
	SingleRowMax int `toml:"single_row_max" yaml:"single_row_max" env:"WSOLVE_SINGLE_ROW_MAX"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxResults int `toml:"max_results" yaml:"max_results" env:"WSOLVE_MAX_RESULTS"`
	CacheSize  int `toml:"cache_size" yaml:"cache_size" env:"WSOLVE_CACHE_SIZE"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Dir:             "data",
			Obscurity:       dictionary.MaxLevel,
			IncludePhrases:  true,
			ThesaurusFile:   dictionary.ThesaurusFile,
			DefinitionsFile: dictionary.DefinitionsFile,
		},
		Lookup: LookupConfig{
			ParallelWorkers: 0,
			Narrow:          false,
			ExcludePhrases:  false,
		},
		Jumble: JumbleConfig{
			SingleRowMax: layout.DefaultSingleRowMax,
		},
		Server: ServerConfig{
			MaxResults: 500,
			CacheSize:  256,
		},
	}
}

// DataFile resolves name against the data dir. Empty names stay empty.
func (c *Config) DataFile(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dict.Dir, name)
}

// Validate resets out of range values to their defaults with a warning.
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Dict.Obscurity < dictionary.MinLevel || c.Dict.Obscurity > dictionary.MaxLevel {
		log.Warnf("Invalid obscurity %d, using %d", c.Dict.Obscurity, def.Dict.Obscurity)
		c.Dict.Obscurity = def.Dict.Obscurity
	}
	if c.Lookup.ParallelWorkers < 0 {
		log.Warnf("Invalid parallel_workers %d, using %d", c.Lookup.ParallelWorkers, def.Lookup.ParallelWorkers)
		c.Lookup.ParallelWorkers = def.Lookup.ParallelWorkers
	}
	if c.Server.MaxResults < 0 {
		log.Warnf("Invalid max_results %d, using %d", c.Server.MaxResults, def.Server.MaxResults)
		c.Server.MaxResults = def.Server.MaxResults
	}
	if c.Server.CacheSize < 0 {
		log.Warnf("Invalid cache_size %d, using %d", c.Server.CacheSize, def.Server.CacheSize)
		c.Server.CacheSize = def.Server.CacheSize
	}
}

// ApplyEnv overrides values from WSOLVE_* environment variables.
func (c *Config) ApplyEnv() error {
	return cleanenv.ReadEnv(c)
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		return "", err
	}
	return pr.GetConfigPath(DefaultFileName)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wsolve/config.toml
// 3. Builtin defaults
//
// Environment overrides apply in every case.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path := loadFile(customConfigPath)
	if err := config.ApplyEnv(); err != nil {
		return nil, path, err
	}
	config.Validate()
	return config, path, nil
}

func loadFile(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	status := utils.CheckDirStatus(configDir)
	if status.Error != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, status.Error)
		return DefaultConfig(), nil
	}
	if !utils.FileExists(configPath) && !status.Writable {
		log.Warnf("Config directory %s is not writable. Using built-in defaults...", configDir)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML or YAML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadConfigFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed value of a file that failed to
// decode as a whole.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "lookup"); ok {
		extractLookupConfig(section, &config.Lookup)
	}
	if section, ok := utils.ExtractSection(tempConfig, "jumble"); ok {
		if val, ok := utils.ExtractInt(section, "single_row_max"); ok {
			config.Jumble.SingleRowMax = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt(section, "max_results"); ok {
			config.Server.MaxResults = val
		}
		if val, ok := utils.ExtractInt(section, "cache_size"); ok {
			config.Server.CacheSize = val
		}
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		dict.Dir = val
	}
	if val, ok := utils.ExtractInt(data, "obscurity"); ok {
		dict.Obscurity = val
	}
	if val, ok := utils.ExtractBool(data, "include_phrases"); ok {
		dict.IncludePhrases = val
	}
	if val, ok := utils.ExtractString(data, "thesaurus_file"); ok {
		dict.ThesaurusFile = val
	}
	if val, ok := utils.ExtractString(data, "definitions_file"); ok {
		dict.DefinitionsFile = val
	}
	if val, ok := utils.ExtractString(data, "wordset_file"); ok {
		dict.WordsetFile = val
	}
}

func extractLookupConfig(data map[string]any, lookup *LookupConfig) {
	if val, ok := utils.ExtractInt(data, "parallel_workers"); ok {
		lookup.ParallelWorkers = val
	}
	if val, ok := utils.ExtractBool(data, "narrow"); ok {
		lookup.Narrow = val
	}
	if val, ok := utils.ExtractBool(data, "exclude_phrases"); ok {
		lookup.ExcludePhrases = val
	}
}

// RebuildConfigFile force creates a new config file at the default path
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "built-in defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML or YAML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveConfigFile(config, configPath)
}

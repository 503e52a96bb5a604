package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/micros/ui"
)

const (
	configDirName   = ".micros"
	configFileName  = "config.json"
	historyFileName = "history"

	DefaultLogLevel    = "warn"
	DefaultMaxAttempts = 3
	maxAttemptsLimit   = 10
)

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	HistoryFile string `json:"history_file"`
	Color       bool   `json:"color"`
	LogLevel    string `json:"log_level"`
	MaxAttempts int    `json:"max_attempts"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		HistoryFile: defaultHistoryFile(),
		Color:       true,
		LogLevel:    DefaultLogLevel,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func defaultHistoryFile() string {
	dir, err := configDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "micros_history")
	}
	return filepath.Join(dir, historyFileName)
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to detect home directory")
	}
	return filepath.Join(home, configDirName), nil
}

// FilePath builds the path to ~/.micros/config.json.
func FilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfigFile reads configuration from ~/.micros/config.json.
func LoadConfigFile() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads configuration from path. A missing file yields the
// defaults; a file that cannot be parsed or validated is an error.
func LoadConfigFrom(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Default(), errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// SaveConfigFile writes cfg to ~/.micros/config.json.
func SaveConfigFile(cfg Config) error {
	path, err := FilePath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, cfg)
}

func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create config")
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		f.Close()
		return errors.Wrap(err, "failed to write config")
	}

	return errors.Wrap(f.Close(), "failed to write config")
}

// Validate validates the configuration and fills in blanks
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}

	if c.MaxAttempts < 1 || c.MaxAttempts > maxAttemptsLimit {
		return fmt.Errorf("max_attempts must be between 1 and %d, got %d", maxAttemptsLimit, c.MaxAttempts)
	}

	if strings.TrimSpace(c.HistoryFile) == "" {
		c.HistoryFile = defaultHistoryFile()
	}

	return nil
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// InteractiveSetup launches a CLI wizard that starts from current, asks for
// every setting and saves the result to path.
func InteractiveSetup(path string, current Config) (Config, error) {
	fmt.Println("🔧 Configuration (micros)")

	cfg := current

	colorSel := promptui.Select{
		Label: "Colored output",
		Items: []string{"on", "off"},
	}
	_, colorChoice, err := colorSel.Run()
	if err != nil {
		return current, err
	}
	cfg.Color = colorChoice == "on"

	levelSel := promptui.Select{
		Label: "Log level (use ↑↓ and Enter)",
		Items: logLevels,
	}
	_, level, err := levelSel.Run()
	if err != nil {
		return current, err
	}
	cfg.LogLevel = level

	attemptsPrompt := promptui.Prompt{
		Label:    fmt.Sprintf("Attempts for malformed input (1-%d)", maxAttemptsLimit),
		Default:  strconv.Itoa(cfg.MaxAttempts),
		Validate: validateAttempts,
	}
	attempts, err := attemptsPrompt.Run()
	if err != nil {
		return current, err
	}
	if cfg.MaxAttempts, err = parseAttempts(attempts); err != nil {
		return current, err
	}

	if err := cfg.Validate(); err != nil {
		return current, err
	}

	if err := SaveConfigTo(path, cfg); err != nil {
		return current, err
	}

	fmt.Println(ui.Success("Configuration saved to " + path))

	return cfg, nil
}

func validateAttempts(input string) error {
	_, err := parseAttempts(input)
	return err
}

func parseAttempts(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.New("enter a whole number")
	}
	if n < 1 || n > maxAttemptsLimit {
		return 0, fmt.Errorf("must be between 1 and %d", maxAttemptsLimit)
	}
	return n, nil
}

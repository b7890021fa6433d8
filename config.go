package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	SaveDirectory string
	Glyphs        CharSet
	ConfirmClear  bool
}

func defaultConfig() *Config {
	return &Config{
		Glyphs:       DefaultCharSet(),
		ConfirmClear: true,
	}
}

// loadConfig reads ~/.scrawlrc if present. A missing file or unknown keys
// are not errors; a malformed glyph table is.
func loadConfig() (*Config, error) {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config, nil
	}
	config.SaveDirectory = filepath.Join(homeDir, "sketches")

	file, err := os.Open(filepath.Join(homeDir, configFile))
	if err != nil {
		return config, nil
	}
	defer file.Close()

	return parseConfig(config, file, homeDir)
}

func parseConfig(config *Config, r io.Reader, homeDir string) (*Config, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "glyphs":
			cs, err := CharSetFromGlyphs(value)
			if err != nil {
				return config, fmt.Errorf("bad glyphs in config: %v", err)
			}
			config.Glyphs = cs
		case "confirmclear", "confirm_clear", "confirm":
			config.ConfirmClear = strings.ToLower(value) == "true"
		}
	}

	return config, scanner.Err()
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath resolves filename inside the save directory, creating the
// directory on first use.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

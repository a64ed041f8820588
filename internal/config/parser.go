package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a uikit.yaml file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	var cfg Config
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParsePage loads and validates a page.yaml file.
func ParsePage(path string) (*Page, error) {
	var page Page
	if err := decodeFile(path, &page); err != nil {
		return nil, err
	}

	if err := ValidatePage(&page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ParseTheme loads and validates a theme definition file.
func ParseTheme(path string) (*ThemeDefinition, error) {
	var def ThemeDefinition
	if err := decodeFile(path, &def); err != nil {
		return nil, err
	}

	if err := ValidateTheme(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return uierrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return uierrors.NewParseError(path, extractLine(err), err)
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

package displayfmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadSettingsFile reads settings from a .json, .yaml/.yml or .toml file.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("displayfmt: read %s: %w", path, err)
	}

	settings, err := decodeSettingsFile(path, data)
	if err != nil {
		return Settings{}, fmt.Errorf("displayfmt: decode %s: %w", path, err)
	}
	return settings, nil
}

func decodeSettingsFile(path string, data []byte) (Settings, error) {
	var settings Settings

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedSettingsFormat, ext)
	}

	return normalizeSettings(settings)
}

func normalizeSettings(settings Settings) (Settings, error) {
	settings.Locale = normalizeLocale(settings.Locale)

	if settings.Interval != "" {
		interval, err := ParseInterval(string(settings.Interval))
		if err != nil {
			return Settings{}, err
		}
		settings.Interval = interval
	}

	if len(settings.Precisions) > 0 {
		cleaned := make(PrecisionTable, len(settings.Precisions))
		for code, precision := range settings.Precisions {
			code = strings.TrimSpace(code)
			if code == "" {
				return Settings{}, fmt.Errorf("displayfmt: empty currency code in precisions")
			}
			cleaned[code] = precision
		}
		settings.Precisions = cleaned
	}

	return settings, nil
}

package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/jrobhoward/findfile/pkg/errors"
)

// GenerateConfigContent renders a starter user config file: the built-in
// defaults, normalized through a TOML round trip, with every value line
// commented out so the file documents the knobs without pinning them.
func GenerateConfigContent() (string, error) {
	var values map[string]interface{}
	if err := gotoml.Unmarshal(defaultConfig, &values); err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse, "built-in defaults are not valid TOML")
	}

	normalized, err := gotoml.Marshal(values)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render defaults")
	}

	return commentOutConfigValues(string(normalized)), nil
}

// commentOutConfigValues comments out all non-comment, non-blank lines
// that contain configuration values. Section headers stay as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

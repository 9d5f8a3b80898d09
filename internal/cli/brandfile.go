// Package cli provides brand and outline file loading for the CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/brandtone/brandtone/internal/brand"
	"github.com/brandtone/brandtone/internal/judge"
)

// validate checks struct tags on loaded files (hexcolor on colour fields,
// required on the brand name, oneof on advisory layout).
var validate = validator.New()

// loadIdentity reads a brand definition from a YAML or JSON file, validates
// it and merges any advisory overrides it carries.
func loadIdentity(path string) (brand.Identity, error) {
	var id brand.Identity

	data, err := os.ReadFile(path) // #nosec G304 - path supplied by the user on the command line
	if err != nil {
		return id, fmt.Errorf("failed to read brand file: %w", err)
	}
	if err := unmarshalByExt(path, data, &id); err != nil {
		return id, fmt.Errorf("failed to parse brand file %s: %w", path, err)
	}
	if err := validate.Struct(id); err != nil {
		return id, fmt.Errorf("invalid brand file %s: %w", path, err)
	}

	if id.Advisory != nil {
		logger.Debug("applying advisory overrides", "brand", id.Name)
		id = brand.ApplyOverrides(id, id.Advisory)
	}

	return id, nil
}

// loadOutline reads a content outline from a YAML or JSON file.
func loadOutline(path string) (judge.ContentOutline, error) {
	var outline judge.ContentOutline

	data, err := os.ReadFile(path) // #nosec G304 - path supplied by the user on the command line
	if err != nil {
		return outline, fmt.Errorf("failed to read outline file: %w", err)
	}
	if err := unmarshalByExt(path, data, &outline); err != nil {
		return outline, fmt.Errorf("failed to parse outline file %s: %w", path, err)
	}

	return outline, nil
}

func unmarshalByExt(path string, data []byte, v interface{}) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

package deps

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var tableSchema string

// ErrInvalidTable is returned when a dependency table file fails validation.
var ErrInvalidTable = errors.New("invalid dependency table")

// tableFile is the on-disk layout of a custom dependency table.
type tableFile struct {
	Dependencies []Dependency `yaml:"dependencies"`
}

// LoadTable reads a dependency table from a YAML file.
// An empty path returns DefaultTable.
func LoadTable(path string) ([]Dependency, error) {
	if path == "" {
		return DefaultTable, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dependency table: %w", err)
	}

	return ParseTable(data)
}

// ParseTable decodes and validates a YAML dependency table.
func ParseTable(data []byte) ([]Dependency, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	err = validateSchema(raw)
	if err != nil {
		return nil, err
	}

	var file tableFile

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	seen := make(map[string]bool, len(file.Dependencies))
	for _, dep := range file.Dependencies {
		if seen[dep.Name] {
			return nil, fmt.Errorf("%w: duplicate dependency %q", ErrInvalidTable, dep.Name)
		}

		seen[dep.Name] = true
	}

	return file.Dependencies, nil
}

func validateSchema(raw any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tableSchema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidTable, strings.Join(problems, "; "))
}

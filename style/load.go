package style

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a class map from a YAML or JSON file.
func Load(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", path)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse sheet %s", path)
	}
	return sheet, nil
}

// Parse decodes a flat name → identifier map. JSON input is accepted since
// it is valid YAML.
func Parse(data []byte) (Sheet, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrInvalidSheet, err.Error())
	}

	sheet := make(Sheet, len(raw))
	for name, value := range raw {
		id, ok := value.(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSheet, "class %q: want string identifier, got %s", name, typeName(value))
		}
		sheet[name] = id
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

package items

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemsFile is the root structure of a user items YAML file.
type ItemsFile struct {
	Items     []Item     `yaml:"items"`
	Contracts []Contract `yaml:"contracts"`
}

// ParseItemsYAML parses a user items document. Structural validation (ids,
// sources, reliability) is not duplicated here: the merged list goes through
// BuildRegistry, which fails atomically on bad data either way.
func ParseItemsYAML(data []byte) (*ItemsFile, error) {
	var file ItemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse items yaml: %w", err)
	}
	return &file, nil
}

// LoadItemsFile reads a user items YAML file from disk. A missing file is
// not an error - there are just no user items.
func LoadItemsFile(path string) (*ItemsFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user config
	if err != nil {
		if os.IsNotExist(err) {
			return &ItemsFile{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file, err := ParseItemsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// MergeItems concatenates the builtin dataset with user items, builtin
// first so build order (and therefore query result order) stays stable.
// Duplicate ids across the two surface as ErrDuplicateID at build time.
func MergeItems(builtin []Item, user []Item) []Item {
	merged := make([]Item, 0, len(builtin)+len(user))
	merged = append(merged, builtin...)
	merged = append(merged, user...)
	return merged
}

// LoadRegistry builds the working registry: builtin items merged with the
// user items file at path (if any). This is the one constructor the rest of
// the application uses.
func LoadRegistry(path string) (*Registry, error) {
	user, err := LoadItemsFile(path)
	if err != nil {
		return nil, err
	}
	return BuildRegistry(MergeItems(BuiltinItems(), user.Items))
}

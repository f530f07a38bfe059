package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pitabwire/util"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports a translation file whose extension is not one
// of .toml, .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported translation file format")

// LoadFile parses a single translation file into an entry. The language tag
// is taken from the file name, e.g. "en.toml" yields "en". Nested tables are
// flattened into dot separated keys.
func LoadFile(path string) (string, Entry, error) {
	fileName := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(fileName))
	tag := strings.TrimSuffix(fileName, ext)
	if tag == "" {
		return "", nil, fmt.Errorf("catalog: no language tag in file name %q", fileName)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("catalog: could not read %s: %w", path, err)
	}

	var data map[string]any
	switch ext {
	case ".toml":
		err = toml.Unmarshal(content, &data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &data)
	case ".json":
		err = json.Unmarshal(content, &data)
	default:
		return "", nil, fmt.Errorf("catalog: %s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return "", nil, fmt.Errorf("catalog: could not parse %s: %w", path, err)
	}

	entry := Entry{}
	flatten(data, "", entry)
	return tag, entry, nil
}

// LoadDir scans a directory of translation files and assembles a table.
// Files that fail to parse are logged and skipped, so one broken language
// never takes down the rest.
func LoadDir(ctx context.Context, dir string) (Table, error) {
	fileInfos, err := os.ReadDir(dir)
	if err != nil {
		return Table{}, fmt.Errorf("catalog: could not read directory %s: %w", dir, err)
	}

	table := Table{}
	for _, fileInfo := range fileInfos {
		if fileInfo.IsDir() {
			continue
		}
		tag, entry, loadErr := LoadFile(filepath.Join(dir, fileInfo.Name()))
		if loadErr != nil {
			if errors.Is(loadErr, ErrUnsupportedFormat) {
				continue
			}
			util.Log(ctx).WithError(loadErr).
				WithField("file", fileInfo.Name()).
				Warn("skipping translation file")
			continue
		}
		table[tag] = entry
	}
	return table, nil
}

// flatten collapses nested maps into dot separated keys, so the TOML table
// [menu] title = "..." becomes "menu.title".
func flatten(data map[string]any, prefix string, into Entry) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(v, fullKey, into)
		case string:
			into[fullKey] = v
		default:
			into[fullKey] = fmt.Sprintf("%v", v)
		}
	}
}

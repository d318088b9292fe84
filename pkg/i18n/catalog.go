package i18n

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrParseCatalog = errors.New("failed to parse message catalog")
	ErrNoMessages   = errors.New("catalog has no messages")
	ErrUnknownLang  = errors.New("default language has no messages")
)

// Catalog maps a language tag to its flattened messages.
type Catalog map[string]map[string]string

// ParseYAML reads one catalog document.
func ParseYAML(r io.Reader) (Catalog, error) {
	var doc map[string]map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoMessages
		}
		return nil, errors.Join(ErrParseCatalog, err)
	}

	cat := make(Catalog, len(doc))
	for lang, tree := range doc {
		msgs := make(map[string]string)
		if err := flatten("", tree, msgs); err != nil {
			return nil, errors.Join(ErrParseCatalog, fmt.Errorf("language %q: %w", lang, err))
		}
		cat[lang] = msgs
	}
	return cat, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// LoadFS merges every .yaml and .yml file in dir of fsys. Later files
// override earlier keys.
func LoadFS(fsys fs.FS, dir string) (Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	cat := make(Catalog)
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		f, err := fsys.Open(path.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Join(ErrParseCatalog, err)
		}
		part, err := ParseYAML(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		cat.Merge(part)
	}
	if len(cat) == 0 {
		return nil, ErrNoMessages
	}
	return cat, nil
}

// Merge copies other into c.
func (c Catalog) Merge(other Catalog) {
	for lang, msgs := range other {
		if c[lang] == nil {
			c[lang] = make(map[string]string, len(msgs))
		}
		maps.Copy(c[lang], msgs)
	}
}

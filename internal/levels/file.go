package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Format is a level file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// ErrUnknownFormat is returned for files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("levels: unknown file format")

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Decode parses and validates a level.
func Decode(data []byte, f Format) (Level, error) {
	var l Level
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &l)
	default:
		err = yaml.Unmarshal(data, &l)
	}
	if err != nil {
		return Level{}, fmt.Errorf("levels: decode %s: %w", f, err)
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}

// Encode serializes a level.
func Encode(l Level, f Format) ([]byte, error) {
	if f == FormatJSON {
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("levels: encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("levels: encode yaml: %w", err)
	}
	return data, nil
}

// LoadFile reads a single level file. A level without a name takes the
// file's base name.
func LoadFile(path string) (Level, error) {
	f, err := FormatFor(path)
	if err != nil {
		return Level{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: read %s: %w", path, err)
	}
	l, err := Decode(data, f)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, nil
}

// Load reads a level file, or every level file of a directory in name order.
// Files with other extensions inside a directory are skipped.
func Load(path string) ([]Level, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		l, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		return []Level{l}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read dir %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFor(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	result := make([]Level, 0, len(names))
	for _, name := range names {
		l, err := LoadFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

// LoadOrEmpty is Load for callers that must keep running: a failure is
// logged and reported as no levels.
func LoadOrEmpty(path string, logger *log.Logger) []Level {
	ls, err := Load(path)
	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Warn("Level load failed, continuing without grids", "path", path, "err", err)
		return nil
	}
	return ls
}

// Save writes a level to path, choosing the encoding from its extension.
func Save(path string, l Level) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	data, err := Encode(l, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("levels: write %s: %w", path, err)
	}
	return nil
}

// SaveDir writes each level to dir as NN-name.<ext>, keeping pack order.
func SaveDir(dir string, ls []Level, f Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("levels: create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(ls))
	for i, l := range ls {
		name := fmt.Sprintf("%02d-%s.%s", i+1, Slug(l.Name), f)
		path := filepath.Join(dir, name)
		if err := Save(path, l); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Slug turns a level name into a file-name friendly token.
func Slug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(sb.String(), "-")
	if s == "" {
		return "level"
	}
	return s
}

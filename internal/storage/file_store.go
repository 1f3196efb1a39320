package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"btd_party/internal/app"
)

// FileStore keeps the roster in a local file. Files ending in .yaml or .yml
// are written as YAML, anything else as the JSON list [{"attack":10},...].
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the roster file. A missing or empty file is an empty roster.
func (s *FileStore) Load(ctx context.Context) ([]app.Survivor, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []app.Survivor{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roster file %s: %w", s.path, err)
	}

	survivors := []app.Survivor{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return survivors, nil
	}

	if s.isYAML() {
		err = yaml.Unmarshal(b, &survivors)
	} else {
		err = json.Unmarshal(b, &survivors)
	}
	if err != nil {
		return nil, fmt.Errorf("decode roster file %s: %w", s.path, err)
	}

	return survivors, nil
}

// Save writes the roster to a temporary file in the same directory and
// renames it over the old one.
func (s *FileStore) Save(ctx context.Context, survivors []app.Survivor) error {
	if survivors == nil {
		survivors = []app.Survivor{}
	}

	var (
		b   []byte
		err error
	)
	if s.isYAML() {
		b, err = yaml.Marshal(survivors)
	} else {
		b, err = json.Marshal(survivors)
	}
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp roster file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write roster file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close roster file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace roster file %s: %w", s.path, err)
	}

	return nil
}

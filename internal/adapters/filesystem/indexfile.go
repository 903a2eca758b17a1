package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"projdex/internal/domain"
)

// SaveIndex writes the project collection as pretty-printed JSON. The
// write goes to a temp file in the target directory followed by a
// rename, so a crash mid-write cannot corrupt a previous index.
func SaveIndex(path string, projects []domain.Project) error {
	// Serialize an empty index as [] rather than null.
	if projects == nil {
		projects = []domain.Project{}
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp index file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing index file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing index file: %w", err)
	}
	return nil
}

// LoadIndex reads a previously persisted index.
func LoadIndex(path string) ([]domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}
	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	return projects, nil
}

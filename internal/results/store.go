package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists a Result as a JSON file
type Store struct {
	filePath string
}

// NewStore creates a new result store
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Save writes the result to disk, creating parent directories. A result
// holding text that JSON would alter is refused.
func (s *Store) Save(result *Result) error {
	if err := result.CheckText(); err != nil {
		return fmt.Errorf("cannot save scan result: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan result: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}

	return nil
}

// Load reads a result from disk
func (s *Store) Load() (*Result, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("result file not found: %s", s.filePath)
		}
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse result file: %w", err)
	}
	if result.Version != SchemaVersion {
		return nil, fmt.Errorf("result file %s has version %q, expected %q", s.filePath, result.Version, SchemaVersion)
	}
	if result.Files == nil {
		result.Files = make(map[string]*FileResult)
	}

	return &result, nil
}

// Exists checks if the result file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Path returns the file path where results are stored
func (s *Store) Path() string {
	return s.filePath
}

package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/logger"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// DiscoveredFile is a source file matched to a language profile
type DiscoveredFile struct {
	Path         string         // Absolute path to file
	RelativePath string         // Path relative to search root
	Language     string         // Profile name
	Profile      *lexer.Profile `json:"-"`
	ModTime      time.Time
	Size         int64
}

// Discover walks rootPath and returns every file the classifier knows a
// profile for, sorted by relative path. A rootPath naming a regular file
// yields that file alone; it is an error if no profile matches it.
func Discover(rootPath string, classifier Classifier) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		p, ok := classifier.ForFile(absRoot)
		if !ok {
			return nil, fmt.Errorf("no language profile for %s (use --language)", rootPath)
		}
		return []DiscoveredFile{newFile(absRoot, filepath.Base(absRoot), p, info)}, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				logger.Warn("skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}

		if d.IsDir() {
			if path != absRoot && skipDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || isHidden(d.Name()) {
			return nil
		}

		p, ok := classifier.ForFile(path)
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, newFile(path, relPath, p, info))
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	logger.Debug("discovered %d file(s) under %s", len(files), absRoot)

	return files, nil
}

func newFile(path, rel string, p *lexer.Profile, info fs.FileInfo) DiscoveredFile {
	return DiscoveredFile{
		Path:         path,
		RelativePath: filepath.ToSlash(rel),
		Language:     p.Name(),
		Profile:      p,
		ModTime:      info.ModTime(),
		Size:         info.Size(),
	}
}

// ByLanguage groups files by profile name
func ByLanguage(files []DiscoveredFile) map[string][]DiscoveredFile {
	groups := make(map[string][]DiscoveredFile)
	for _, f := range files {
		groups[f.Language] = append(groups[f.Language], f)
	}
	return groups
}

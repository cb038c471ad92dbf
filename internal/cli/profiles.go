package cli

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/internal/logger"
	"github.com/cybertec-postgresql/tokscan/pkg/languages"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// ProfileExt is the file extension of user profile files
const ProfileExt = ".profile"

// NewRegistry returns the built-in profiles plus any *.profile files in
// dir. Files are loaded in name order, so a profile may extend one
// defined in an earlier file.
func NewRegistry(dir string) (*languages.Registry, error) {
	reg := languages.Builtin()
	if dir == "" {
		return reg, nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*"+ProfileExt))
	if err != nil {
		return nil, errors.NewProfileError(dir, err.Error())
	}
	sort.Strings(paths)

	for _, path := range paths {
		p, err := loadProfile(path, reg)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(p); err != nil {
			return nil, errors.NewProfileError(path, err.Error())
		}
		logger.Debug("registered profile %s from %s", p.Name(), path)
	}

	return reg, nil
}

func loadProfile(path string, reg *languages.Registry) (*lexer.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewProfileError(path, err.Error())
	}
	defer f.Close()

	p, err := lexer.ParseProfile(f, reg.Get)
	if err != nil {
		return nil, errors.NewProfileError(path, err.Error())
	}
	return p, nil
}

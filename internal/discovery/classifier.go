package discovery

import (
	"path/filepath"
	"strings"

	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// Classifier maps a file path to the profile that should scan it.
// *languages.Registry satisfies it.
type Classifier interface {
	ForFile(path string) (*lexer.Profile, bool)
}

// fixed classifies every file as the same profile
type fixed struct {
	profile *lexer.Profile
}

func (f fixed) ForFile(string) (*lexer.Profile, bool) {
	return f.profile, true
}

// Fixed returns a Classifier that assigns p to every file, used when the
// language is forced on the command line.
func Fixed(p *lexer.Profile) Classifier {
	return fixed{profile: p}
}

// isHidden reports whether a path element should be skipped while walking
func isHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}

// skipDirs are directories that never hold sources worth scanning
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

func skipDir(path string) bool {
	base := filepath.Base(path)
	return isHidden(base) || skipDirs[base]
}

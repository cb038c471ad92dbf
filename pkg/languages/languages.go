// Package languages provides the built-in language profiles and a registry
// for looking them up by name, alias or file extension.
package languages

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// aliases maps alternative spellings to profile names
var aliases = map[string]string{
	"asm":    "assembly",
	"c++":    "cpp",
	"cxx":    "cpp",
	"c#":     "csharp",
	"cs":     "csharp",
	"golang": "go",
	"hs":     "haskell",
	"js":     "javascript",
	"node":   "javascript",
	"py":     "python",
	"rb":     "ruby",
	"rs":     "rust",
	"ts":     "typescript",
	"f90":    "fortran",
}

// Registry holds profiles by name and extension. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*lexer.Profile
	byExt  map[string]*lexer.Profile
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*lexer.Profile),
		byExt:  make(map[string]*lexer.Profile),
	}
}

// Builtin returns a new registry holding every built-in profile
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range builtins() {
		_ = r.Register(p)
	}
	return r
}

func builtins() []*lexer.Profile {
	return []*lexer.Profile{
		Assembly, C, Cpp, CSharp, Fortran, Go, Haskell, Java,
		JavaScript, Lua, Python, Ruby, Rust, SQL, TypeScript,
	}
}

// Register adds a profile. A profile with the same name replaces the
// previous one, and its extensions take over from any earlier owner.
func (r *Registry) Register(p *lexer.Profile) error {
	if p == nil || p.Name() == "" {
		return fmt.Errorf("cannot register a profile without a name")
	}
	name := strings.ToLower(p.Name())

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[name]; ok {
		for _, ext := range old.Extensions() {
			if r.byExt[ext] == old {
				delete(r.byExt, ext)
			}
		}
	}
	r.byName[name] = p
	for _, ext := range p.Extensions() {
		r.byExt[ext] = p
	}
	return nil
}

// Get returns the profile for a name or alias, ignoring case
func (r *Registry) Get(name string) (*lexer.Profile, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[key]
	return p, ok
}

// ForFile returns the profile registered for the file's extension
func (r *Registry) ForFile(path string) (*lexer.Profile, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byExt[ext]
	return p, ok
}

// Names returns the registered profile names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns the registered profiles sorted by name
func (r *Registry) Profiles() []*lexer.Profile {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()
	profiles := make([]*lexer.Profile, len(names))
	for i, name := range names {
		profiles[i] = r.byName[name]
	}
	return profiles
}

var builtin = Builtin()

// Get looks up a built-in profile by name or alias
func Get(name string) (*lexer.Profile, bool) {
	return builtin.Get(name)
}

// ForFile looks up a built-in profile by file extension
func ForFile(path string) (*lexer.Profile, bool) {
	return builtin.ForFile(path)
}

// Names lists the built-in profile names
func Names() []string {
	return builtin.Names()
}

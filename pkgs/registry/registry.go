// Package registry maps lexer names, aliases, and filename globs to lexer
// constructors, so a host highlighting system can pick a lexer for a file
// without knowing every format package.
package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/usd-tools/usdlex/pkgs/lexer"
)

// Entry describes one registered lexer: its display name, the short names
// a host may select it by, the filename globs it claims, and a constructor
// for lexing one buffer.
type Entry struct {
	Name      string
	Aliases   []string
	Filenames []string
	New       func(input string) *lexer.Lexer
}

// Registry holds lexer entries. The zero value is not usable; call
// NewRegistry. Entries are indexed by lower-cased name and alias.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	byAlias map[string]int
}

var global = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byAlias: make(map[string]int)}
}

// Register adds an entry, indexing its name and aliases case-insensitively.
// A later entry wins alias collisions.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := len(r.entries)
	r.entries = append(r.entries, e)
	r.byAlias[strings.ToLower(e.Name)] = idx
	for _, a := range e.Aliases {
		r.byAlias[strings.ToLower(a)] = idx
	}
}

// Lookup finds an entry by name or alias. An unknown name gets a
// "did you mean" suggestion in the error when something ranks close.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx, ok := r.byAlias[strings.ToLower(name)]; ok {
		return r.entries[idx], nil
	}
	if suggestion := r.closestAlias(name); suggestion != "" {
		return Entry{}, fmt.Errorf("unknown lexer %q (did you mean %q?)", name, suggestion)
	}
	return Entry{}, fmt.Errorf("unknown lexer %q", name)
}

// closestAlias finds the closest registered alias using fuzzy matching.
// Caller holds at least the read lock.
func (r *Registry) closestAlias(target string) string {
	candidates := make([]string, 0, len(r.byAlias))
	for a := range r.byAlias {
		candidates = append(candidates, a)
	}
	sort.Strings(candidates)
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Match selects an entry whose filename globs match the base name of path.
// Entries are tried in registration order.
func (r *Registry) Match(path string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	base := filepath.Base(path)
	for _, e := range r.entries {
		for _, pattern := range e.Filenames {
			if ok, err := filepath.Match(pattern, base); err == nil && ok {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Register adds an entry to the process-wide registry. Format packages call
// this from init.
func Register(e Entry) {
	global.Register(e)
}

// Lookup finds an entry in the process-wide registry by name or alias.
func Lookup(name string) (Entry, error) {
	return global.Lookup(name)
}

// Match selects an entry from the process-wide registry by filename.
func Match(path string) (Entry, bool) {
	return global.Match(path)
}

package resolver

import (
	"path"
	"sort"
	"strings"

	"covdelta/internal/logging"
)

// markerNames are the package subdirectories that terminate a package
// identifier when scanning a changed path from the package root.
var markerNames = map[string]bool{
	"benchmark": true,
	"bin":       true,
	"data":      true,
	"docs":      true,
	"etc":       true,
	"examples":  true,
	"include":   true,
	"lib":       true,
	"scripts":   true,
	"src":       true,
	"test":      true,
}

// Resolver maps changed file paths to unique package identifiers.
type Resolver struct {
	root string
}

// New creates a Resolver for the given package-root prefix, e.g.
// "lib/node_modules/@stdlib/".
func New(root string) *Resolver {
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return &Resolver{root: root}
}

// Resolve returns the sorted set of package identifiers touched by the
// changed paths. Paths outside the package root and paths too short to
// name a package are discarded, not errors.
func (r *Resolver) Resolve(changed []string) []string {
	seen := make(map[string]bool)
	for _, p := range changed {
		pkg, ok := r.packageFor(p)
		if !ok {
			logging.Logger.Debug("Skipping path without a package", "path", p)
			continue
		}
		seen[pkg] = true
	}

	pkgs := make([]string, 0, len(seen))
	for pkg := range seen {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

// packageFor extracts the package identifier from one changed path: the
// segments between the package root and the first marker subdirectory.
func (r *Resolver) packageFor(p string) (string, bool) {
	p = path.Clean(strings.TrimSpace(p))
	if !strings.HasPrefix(p, r.root) {
		return "", false
	}

	rest := strings.TrimPrefix(p, r.root)
	if rest == "" || rest == "." {
		return "", false
	}

	segments := strings.Split(rest, "/")
	for i, segment := range segments {
		if markerNames[segment] {
			if i == 0 {
				// Marker directly under the root names no package
				return "", false
			}
			return strings.Join(segments[:i], "/"), true
		}
	}

	// No marker segment: the last segment is the file itself
	if len(segments) < 2 {
		return "", false
	}
	return strings.Join(segments[:len(segments)-1], "/"), true
}

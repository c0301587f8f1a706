// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExclusions are the paths skipped unless configured otherwise.
var DefaultExclusions = []string{
	".*/bin/.*",
	".*/obj/.*",
	".*/submodules/.*",
	".*/.git/.*",
	".*/.vs/.*",
	".*/AssemblyInfo.cs",
}

// Rules is an ordered set of path exclusion patterns.
type Rules struct {
	patterns []string
	res      []*regexp.Regexp
}

// CompileRules compiles slash-separated regular expressions into Rules.
// Slashes are replaced with the platform path separator. A pattern excludes
// a path when it matches at the start of it; it doesn't have to match the
// whole path.
func CompileRules(patterns []string) (*Rules, error) {
	sep := regexp.QuoteMeta(string(filepath.Separator))
	r := &Rules{
		patterns: patterns,
		res:      make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile(`^(?:` + strings.ReplaceAll(p, "/", sep) + `)`)
		if err != nil {
			return nil, fmt.Errorf("exclusion pattern %q: %w", p, err)
		}
		r.res = append(r.res, re)
	}
	return r, nil
}

// Match reports whether path is excluded and returns the first pattern that
// matched it. A nil Rules excludes nothing.
func (r *Rules) Match(path string) (pattern string, ok bool) {
	if r == nil {
		return "", false
	}
	for i, re := range r.res {
		if re.MatchString(path) {
			return r.patterns[i], true
		}
	}
	return "", false
}

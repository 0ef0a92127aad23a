package verbo

import (
	"slices"
	"strings"
)

// directive pairs a module path prefix with the severity threshold that
// applies to modules under it. An empty prefix sets the default threshold.
type directive struct {
	prefix    string
	threshold Severity
}

// filterSet resolves a module path to exactly one threshold: the directive
// with the longest matching prefix, or the default when none matches.
type filterSet struct {
	def  Severity
	dirs []directive
}

// parseDirectives parses a comma-separated directive list. Each token is
// either "prefix=level" or a bare "level" naming the default threshold, where
// level is a severity name or "off". Tokens that cannot be parsed are
// returned in skipped and otherwise ignored; parsing never fails.
func parseDirectives(spec string) (dirs []directive, skipped []string) {
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		prefix, level, found := strings.Cut(tok, "=")
		if !found {
			threshold, err := parseThreshold(tok)
			if err != nil {
				skipped = append(skipped, tok)
				continue
			}
			dirs = append(dirs, directive{threshold: threshold})
			continue
		}
		threshold, err := parseThreshold(strings.TrimSpace(level))
		if err != nil {
			skipped = append(skipped, tok)
			continue
		}
		dirs = append(dirs, directive{prefix: strings.TrimSpace(prefix), threshold: threshold})
	}
	return dirs, skipped
}

// parseThreshold parses a directive level: any severity name, or "off" to
// silence the matched modules entirely.
func parseThreshold(name string) (Severity, error) {
	if strings.EqualFold(name, "off") {
		return SeverityOff, nil
	}
	return ParseSeverity(name)
}

// merge folds parsed directives into the set. Default-setting directives
// overwrite the default; the rest append in order, so a later directive for
// the same prefix wins.
func (fs *filterSet) merge(dirs []directive) {
	for _, d := range dirs {
		if d.prefix == "" {
			fs.def = d.threshold
			continue
		}
		fs.dirs = append(fs.dirs, d)
	}
}

// threshold returns the effective threshold for a module path.
func (fs *filterSet) threshold(module string) Severity {
	th := fs.def
	bestLen := -1
	for _, d := range fs.dirs {
		if len(d.prefix) >= bestLen && matchesPrefix(module, d.prefix) {
			th = d.threshold
			bestLen = len(d.prefix)
		}
	}
	return th
}

// maxThreshold returns the least restrictive threshold in the set. It is the
// verbosity baseline and the ambient gate for Enabled checks.
func (fs *filterSet) maxThreshold() Severity {
	m := fs.def
	for _, d := range fs.dirs {
		if d.threshold > m {
			m = d.threshold
		}
	}
	return m
}

// clone returns a copy that does not share directive storage with fs.
func (fs *filterSet) clone() filterSet {
	return filterSet{def: fs.def, dirs: slices.Clone(fs.dirs)}
}

// matchesPrefix reports whether prefix matches module on a path-segment
// boundary: "server" matches "server" and "server/http", not "serverx". An
// empty prefix matches every module.
func matchesPrefix(module, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(module, prefix) {
		return false
	}
	return len(module) == len(prefix) || module[len(prefix)] == '/'
}

package verbo

import (
	"strconv"
	"strings"
)

// render produces the full output line for a record: tag, separator,
// message, newline. The tag concatenates the enabled fields in order (level
// text, module path, line number) and is the only painted portion; the
// message is never colorized. Rendering is pure: identical record and
// configuration always produce identical bytes.
func (l *logger) render(r Record) string {
	var tag string
	if l.includeLevel || l.includeModule || l.includeLine {
		var b strings.Builder
		if l.includeLevel {
			b.WriteString(r.Severity.String())
		}
		if l.includeModule {
			module := r.Module
			if module == "" {
				module = "unknown"
			}
			if l.includeLevel {
				b.WriteString(" [")
				b.WriteString(module)
				b.WriteByte(']')
			} else {
				b.WriteString(module)
			}
		}
		if l.includeLine && r.Line > 0 {
			b.WriteString(" (line ")
			b.WriteString(strconv.Itoa(r.Line))
			b.WriteByte(')')
		}
		tag = b.String()
		if tag != "" {
			if paint := l.paint[r.Severity]; paint != nil {
				tag = paint(tag)
			}
		}
	}
	return tag + l.separator + r.Message + "\n"
}

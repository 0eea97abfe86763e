package snapshot

import (
	"strings"

	"github.com/envprof/envprof/debug"
)

// Parse decodes dump text into a Snapshot. Lines that are not assignments to
// a valid identifier are dropped. The variable named pathVar is removed from
// the generic pairs and split on sep into SearchPath, preserving order.
// Parse never fails; structural checks are the caller's concern.
func Parse(text []byte, pathVar string, sep byte) *Snapshot {
	snap := &Snapshot{}
	seen := map[string]bool{}
	for _, line := range strings.Split(string(text), "\n") {
		name, value, ok := splitAssign(line)
		if !ok {
			if debug.Parse() && strings.TrimSpace(line) != "" {
				debug.Logf("snapshot: dropping malformed line %q\n", line)
			}
			continue
		}
		if seen[name] {
			// names are unique within a snapshot; first wins
			continue
		}
		seen[name] = true
		if name == pathVar {
			snap.HasSearchPath = true
			snap.SearchPath = splitList(value, sep)
			continue
		}
		snap.Vars = append(snap.Vars, Var{Name: name, Value: value})
	}
	return snap
}

func splitAssign(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i <= 0 {
		return "", "", false
	}
	name = line[:i]
	if !validName(name) {
		return "", "", false
	}
	return name, line[i+1:], true
}

func validName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}

func splitList(value string, sep byte) []string {
	if value == "" {
		return nil
	}
	var entries []string
	for _, e := range strings.Split(value, string(sep)) {
		if e == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

package subst

import "strings"

// Segment is a run of a rewritten value: either literal text or a symbolic
// reference to an earlier variable, expanded at script-load time.
type Segment struct {
	Ref  bool
	Text string
}

// Value is a rewritten variable value, literal and reference segments in
// left-to-right order.
type Value []Segment

// Literal returns a Value holding s verbatim, with no references.
func Literal(s string) Value {
	if s == "" {
		return nil
	}
	return Value{{Text: s}}
}

// HasRef reports whether v contains at least one symbolic reference.
func (v Value) HasRef() bool {
	for _, seg := range v {
		if seg.Ref {
			return true
		}
	}
	return false
}

// String renders v with references in ${NAME} form. Used for debugging and
// tests; the serializer applies its own quoting.
func (v Value) String() string {
	var b strings.Builder
	for _, seg := range v {
		if seg.Ref {
			b.WriteString("${")
			b.WriteString(seg.Text)
			b.WriteString("}")
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Resolve expands v against lookup, replacing each reference with the value
// lookup returns for it.
func (v Value) Resolve(lookup func(string) string) string {
	var b strings.Builder
	for _, seg := range v {
		if seg.Ref {
			b.WriteString(lookup(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Package snapshot parses flat environment dumps into structured snapshots.
//
// A dump is one name=value pair per line. The designated search-path
// variable is extracted from the generic pairs into an ordered entry list.
package snapshot

// Var is a single environment assignment as it appeared in a dump.
type Var struct {
	Name  string
	Value string
}

// Snapshot is one captured shell environment: the ordered assignments minus
// the search-path variable, plus the search-path entries in original order.
type Snapshot struct {
	Vars       []Var
	SearchPath []string

	// HasSearchPath records whether the search-path variable appeared in
	// the dump at all, as opposed to appearing with an empty value.
	HasSearchPath bool
}

// Get returns the value of name and whether it is present.
func (s *Snapshot) Get(name string) (string, bool) {
	for i := range s.Vars {
		if s.Vars[i].Name == name {
			return s.Vars[i].Value, true
		}
	}
	return "", false
}

// Has reports whether name is present among the generic pairs.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// HasPathEntry reports whether entry is present in the search path.
func (s *Snapshot) HasPathEntry(entry string) bool {
	for _, e := range s.SearchPath {
		if e == entry {
			return true
		}
	}
	return false
}

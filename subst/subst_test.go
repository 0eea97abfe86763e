package subst

import (
	"testing"

	"github.com/envprof/envprof/classify"
	"github.com/envprof/envprof/snapshot"
)

func TestRewriteReferencesEarlierVariable(t *testing.T) {
	reg := &Registry{}
	reg.Register("ROOT", `/opt/tool`)
	v := reg.Rewrite(`/opt/tool/bin`)
	if v.String() != "${ROOT}/bin" {
		t.Fatalf("got %q", v.String())
	}
	if !v.HasRef() {
		t.Fatal("expected a reference")
	}
}

func TestRewriteFirstRegisteredWins(t *testing.T) {
	// ROOT1 registered before the longer, more specific ROOT2; the earlier
	// registration consumes the prefix and ROOT2 never matches.
	reg := &Registry{}
	reg.Register("ROOT1", "/opt")
	reg.Register("ROOT2", "/opt/tool")
	v := reg.Rewrite("/opt/tool/bin")
	if v.String() != "${ROOT1}/tool/bin" {
		t.Fatalf("got %q", v.String())
	}
}

func TestRewriteEscapesPatternOnce(t *testing.T) {
	reg := &Registry{}
	reg.Register("DIR", `C:\Program Files (x86)\Tool`)
	a := reg.Rewrite(`C:\Program Files (x86)\Tool\bin`)
	b := reg.Rewrite(`C:\Program Files (x86)\Tool\lib`)
	if a.String() != `${DIR}\bin` {
		t.Fatalf("got %q", a.String())
	}
	if b.String() != `${DIR}\lib` {
		t.Fatalf("got %q", b.String())
	}
}

func TestRewriteMultipleOccurrences(t *testing.T) {
	reg := &Registry{}
	reg.Register("R", "/r")
	v := reg.Rewrite("/r/a;/r/b")
	if v.String() != "${R}/a;${R}/b" {
		t.Fatalf("got %q", v.String())
	}
}

func TestRegisterSkipsEmptyValue(t *testing.T) {
	reg := &Registry{}
	reg.Register("EMPTY", "")
	if reg.Len() != 0 {
		t.Fatal("empty value should not be registered")
	}
}

func TestResolveRoundTrip(t *testing.T) {
	reg := &Registry{}
	reg.Register("ROOT", "/opt/tool")
	v := reg.Rewrite("/opt/tool/bin")
	got := v.Resolve(func(name string) string {
		if name != "ROOT" {
			t.Fatalf("unexpected reference %q", name)
		}
		return "/opt/tool"
	})
	if got != "/opt/tool/bin" {
		t.Fatalf("round trip got %q", got)
	}
}

func classified(t *testing.T, vars []snapshot.Var) *classify.Result {
	t.Helper()
	c := &classify.Classifier{}
	mustAdd := func(cat classify.Category, pat string) {
		if err := c.Add(cat, pat, ""); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(classify.Literal, "KIND")
	mustAdd(classify.Common, "ROOT")
	mustAdd(classify.Toolchain, "TOOLDIR")
	mustAdd(classify.ToolchainLists, "INCLUDE")
	return c.Classify(vars, ';')
}

func TestProcessCategoryOrderAndRegistration(t *testing.T) {
	vars := []snapshot.Var{
		{Name: "SUB", Value: `C:\VS\Tools\bin`},
		{Name: "INCLUDE", Value: `C:\VS\Tools\include;C:\SDK\include`},
		{Name: "TOOLDIR", Value: `C:\VS\Tools`},
		{Name: "ROOT", Value: `C:\VS`},
		{Name: "KIND", Value: `C:\VS`},
	}
	reg := &Registry{}
	recs := Process(classified(t, vars), reg, ';')
	byName := map[string]Record{}
	for _, r := range recs {
		byName[r.Name] = r
	}

	// literal value is copied through and never registered, even though it
	// equals a registered value
	if got := byName["KIND"].Value.String(); got != `C:\VS` {
		t.Fatalf("literal rewritten: %q", got)
	}
	// toolchain references the earlier common root
	if got := byName["TOOLDIR"].Value.String(); got != `${ROOT}\Tools` {
		t.Fatalf("TOOLDIR got %q", got)
	}
	// list entries reference the earliest registered value; ROOT was
	// registered before TOOLDIR, so ROOT consumes the shared prefix and
	// TOOLDIR never matches
	inc := byName["INCLUDE"]
	if !inc.List || len(inc.Entries) != 2 {
		t.Fatalf("INCLUDE not a 2-entry list: %+v", inc)
	}
	if got := inc.Entries[0].String(); got != `${ROOT}\Tools\include` {
		t.Fatalf("INCLUDE[0] got %q", got)
	}
	if got := inc.Entries[1].String(); got != `C:\SDK\include` {
		t.Fatalf("INCLUDE[1] got %q", got)
	}
	// other-bucket value consumes but never produces
	if got := byName["SUB"].Value.String(); got != `${ROOT}\Tools\bin` {
		t.Fatalf("SUB got %q", got)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected ROOT and TOOLDIR registered, got %d entries", reg.Len())
	}
}

func TestProcessNoForwardReferences(t *testing.T) {
	// SUB is processed in the other bucket, after toolchain; LATE is also
	// other and must not be referenced by SUB even though its value is a
	// prefix of SUB's.
	vars := []snapshot.Var{
		{Name: "LATE", Value: "/x"},
		{Name: "SUB", Value: "/x/y"},
	}
	reg := &Registry{}
	recs := Process(classified(t, vars), reg, ';')
	for _, r := range recs {
		if r.Value.HasRef() {
			t.Fatalf("%s unexpectedly holds a reference: %s", r.Name, r.Value)
		}
	}
	if reg.Len() != 0 {
		t.Fatal("other-bucket values must not be registered")
	}
}

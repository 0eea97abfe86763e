package profile

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/envprof/envprof/classify"
	"github.com/envprof/envprof/subst"
)

func TestWriteScalarQuoting(t *testing.T) {
	var buf bytes.Buffer
	recs := []subst.Record{
		{Name: "PLAIN", Value: subst.Literal(`C:\VS\with $dollar`)},
		{Name: "REF", Value: subst.Value{
			{Ref: true, Text: "ROOT"},
			{Text: `\bin`},
		}},
	}
	if err := Write(&buf, recs, nil, &Config{PathVar: "PATH", Sep: ';'}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != `export PLAIN='C:\VS\with $dollar'` {
		t.Fatalf("plain line: %s", lines[0])
	}
	if lines[1] != `export REF="${ROOT}\\bin"` {
		t.Fatalf("ref line: %s", lines[1])
	}
}

func TestWriteSingleQuoteEscape(t *testing.T) {
	var buf bytes.Buffer
	recs := []subst.Record{{Name: "Q", Value: subst.Literal("it's")}}
	if err := Write(&buf, recs, nil, &Config{PathVar: "PATH", Sep: ';'}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != `export Q='it'\''s'` {
		t.Fatalf("got %s", got)
	}
}

func TestWriteListBlock(t *testing.T) {
	var buf bytes.Buffer
	recs := []subst.Record{{
		Name:     "INCLUDE",
		Category: classify.ToolchainLists,
		List:     true,
		Entries:  []subst.Value{subst.Literal("/a"), subst.Literal("/b")},
	}}
	if err := Write(&buf, recs, nil, &Config{PathVar: "PATH", Sep: ';'}); err != nil {
		t.Fatal(err)
	}
	want := "# INCLUDE\n" +
		`INCLUDE="/b${INCLUDE:+;$INCLUDE}"` + "\n" +
		`INCLUDE="/a${INCLUDE:+;$INCLUDE}"` + "\n" +
		"export INCLUDE\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWritePathWrap(t *testing.T) {
	var buf bytes.Buffer
	entries := []subst.Value{subst.Literal(`C:\VS\bin`)} // already reversed
	cfg := &Config{PathVar: "PATH", Sep: ';', PathSep: ':', PosixWrap: "cygpath -u"}
	if err := Write(&buf, nil, entries, cfg); err != nil {
		t.Fatal(err)
	}
	want := "# PATH\n" +
		`PATH="$(cygpath -u "C:\\VS\\bin")${PATH:+:$PATH}"` + "\n" +
		"export PATH\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

// incremental line shape: NAME="BODY${NAME:+<sep>$NAME}"
var incrRE = regexp.MustCompile(`^(\w+)="(.*)\$\{(\w+):\+(.)\$(\w+)\}"$`)

// resolveList mechanically evaluates the emitted incremental statements the
// way a shell would, starting from an unset variable.
func resolveList(t *testing.T, text string, lookup func(string) string) map[string]string {
	t.Helper()
	env := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		m := incrRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, body, sep := m[1], m[2], m[4]
		if m[3] != name || m[5] != name {
			t.Fatalf("inconsistent statement: %s", line)
		}
		val := expand(body, lookup)
		if prior, ok := env[name]; ok && prior != "" {
			val = val + sep + prior
		}
		env[name] = val
	}
	return env
}

var refRE = regexp.MustCompile(`\$\{(\w+)\}`)

func expand(body string, lookup func(string) string) string {
	body = refRE.ReplaceAllStringFunc(body, func(m string) string {
		return lookup(m[2 : len(m)-1])
	})
	// undo double-quote escaping
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

func TestListRoundTripOriginalOrder(t *testing.T) {
	var buf bytes.Buffer
	recs := []subst.Record{{
		Name: "LIB",
		List: true,
		Entries: []subst.Value{
			subst.Literal(`C:\a`),
			subst.Literal(`C:\b`),
			subst.Literal(`C:\c`),
		},
	}}
	if err := Write(&buf, recs, nil, &Config{PathVar: "PATH", Sep: ';'}); err != nil {
		t.Fatal(err)
	}
	env := resolveList(t, buf.String(), func(string) string { return "" })
	if env["LIB"] != `C:\a;C:\b;C:\c` {
		t.Fatalf("materialized order wrong: %q", env["LIB"])
	}
}

func TestPathRoundTripWithReferences(t *testing.T) {
	reg := &subst.Registry{}
	reg.Register("ROOT", "/opt/tool")
	// original order e1..e3, already reversed as the path specializer does
	entries := []subst.Value{
		reg.Rewrite("/opt/tool/ide"),
		reg.Rewrite("/usr/sdk/bin"),
		reg.Rewrite("/opt/tool/bin"),
	}
	var buf bytes.Buffer
	cfg := &Config{PathVar: "PATH", Sep: ':'}
	if err := Write(&buf, nil, entries, cfg); err != nil {
		t.Fatal(err)
	}
	env := resolveList(t, buf.String(), func(name string) string {
		if name == "ROOT" {
			return "/opt/tool"
		}
		return ""
	})
	if env["PATH"] != "/opt/tool/bin:/usr/sdk/bin:/opt/tool/ide" {
		t.Fatalf("got %q", env["PATH"])
	}
}

func TestEmptyListOmitted(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, nil, &Config{PathVar: "PATH", Sep: ';'}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

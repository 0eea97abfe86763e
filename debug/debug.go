package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Diff     bool
	Classify bool
	Subst    bool
	Path     bool
	Override bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ENVPROF_DEBUG_PARSE")
	d.Diff = boolEnv("ENVPROF_DEBUG_DIFF")
	d.Classify = boolEnv("ENVPROF_DEBUG_CLASSIFY")
	d.Subst = boolEnv("ENVPROF_DEBUG_SUBST")
	d.Path = boolEnv("ENVPROF_DEBUG_PATH")
	d.Override = boolEnv("ENVPROF_DEBUG_OVERRIDE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Classify() bool {
	return d.Classify
}
func Subst() bool {
	return d.Subst
}
func Path() bool {
	return d.Path
}
func Override() bool {
	return d.Override
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/envprof/envprof/debug"
	"github.com/envprof/envprof/snapshot"
)

type rule struct {
	cat  Category
	name *regexp.Regexp
	when *vm.Program
}

// Classifier holds the ordered rule table. Rules are evaluated in the order
// added; the first rule matching a variable decides its category.
type Classifier struct {
	rules []rule
}

// Add appends a rule assigning variables whose whole name matches namePat to
// cat. when, if non-empty, is an expr predicate over name, value and sep
// that must also hold for the rule to match.
func (c *Classifier) Add(cat Category, namePat, when string) error {
	if cat < 0 || cat >= numCategories {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}
	re, err := regexp.Compile(wholeName(namePat))
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBadNamePattern, namePat, err)
	}
	r := rule{cat: cat, name: re}
	if when != "" {
		prog, err := expr.Compile(when, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrBadPredicate, when, err)
		}
		r.when = prog
	}
	c.rules = append(c.rules, r)
	return nil
}

func predicateEnv(v snapshot.Var, sep byte) map[string]any {
	return map[string]any{
		"name":  v.Name,
		"value": v.Value,
		"sep":   string(sep),
	}
}

func wholeName(pat string) string {
	if !strings.HasPrefix(pat, "^") {
		pat = "^" + pat
	}
	if !strings.HasSuffix(pat, "$") {
		pat = pat + "$"
	}
	return pat
}

// Result is a total partition of the classified variables: each appears in
// exactly one bucket, buckets preserve the input's relative order.
type Result struct {
	buckets [numCategories][]snapshot.Var
}

// Bucket returns the variables assigned to cat, in original relative order.
func (r *Result) Bucket(cat Category) []snapshot.Var {
	return r.buckets[cat]
}

// Len returns the total number of classified variables.
func (r *Result) Len() int {
	n := 0
	for i := range r.buckets {
		n += len(r.buckets[i])
	}
	return n
}

// Classify assigns every variable to a category. sep is the platform list
// separator, exposed to rule predicates.
func (c *Classifier) Classify(vars []snapshot.Var, sep byte) *Result {
	res := &Result{}
	for _, v := range vars {
		cat := c.categoryOf(v, sep)
		if debug.Classify() {
			debug.Logf("classify: %s -> %s\n", v.Name, cat)
		}
		res.buckets[cat] = append(res.buckets[cat], v)
	}
	return res
}

func (c *Classifier) categoryOf(v snapshot.Var, sep byte) Category {
	for _, r := range c.rules {
		if !r.name.MatchString(v.Name) {
			continue
		}
		if r.when != nil {
			out, err := vm.Run(r.when, predicateEnv(v, sep))
			if err != nil || out != true {
				continue
			}
		}
		return r.cat
	}
	return Other
}

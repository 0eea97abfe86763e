// Package classify buckets post-diff variables into the fixed, ordered set
// of emission categories. Membership is decided by an ordered rule table,
// first match wins, unmatched variables fall to Other.
package classify

import "fmt"

// Category is an emission bucket. The declaration order is both the output
// order and the substitution-registration order.
type Category int

const (
	Literal Category = iota
	Common
	Dotnet
	Toolchain
	ToolchainLists
	Other
	numCategories
)

// Categories lists all categories in emission order.
var Categories = []Category{Literal, Common, Dotnet, Toolchain, ToolchainLists, Other}

var categoryNames = map[Category]string{
	Literal:        "literal",
	Common:         "common",
	Dotnet:         "dotnet",
	Toolchain:      "toolchain",
	ToolchainLists: "toolchain-lists",
	Other:          "other",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a policy-file category name to a Category.
func ParseCategory(s string) (Category, error) {
	for c, n := range categoryNames {
		if n == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

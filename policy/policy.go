// Package policy loads classification policies. A policy is a YAML rule
// table assigning variable name patterns to emission categories; a built-in
// default ships embedded and a user policy may be overlaid on top of it.
package policy

import (
	_ "embed"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/envprof/envprof/classify"
)

//go:embed default.yaml
var defaultYAML []byte

// Policy is the YAML shape of a classification policy. Category blocks and
// the rules within them are evaluated in listed order, first match wins.
type Policy struct {
	Categories []CategoryRules `yaml:"categories"`
}

type CategoryRules struct {
	Category string `yaml:"category"`
	Rules    []Rule `yaml:"rules"`
}

// Rule matches a whole variable name against a regular expression, with an
// optional expr predicate over name, value and sep.
type Rule struct {
	Name string `yaml:"name"`
	When string `yaml:"when,omitempty"`
}

// Default returns the embedded default policy.
func Default() (*Policy, error) {
	p := &Policy{}
	if err := yaml.Unmarshal(defaultYAML, p); err != nil {
		return nil, fmt.Errorf("error decoding embedded policy: %w", err)
	}
	return p, nil
}

// Load reads path and overlays it on the default policy using JSON merge
// patch semantics: top-level keys the file sets replace the default's.
func Load(path string) (*Policy, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read policy %q: %w", path, err)
	}
	return Overlay(d)
}

// Overlay merges overlayYAML over the embedded default.
func Overlay(overlayYAML []byte) (*Policy, error) {
	baseJSON, err := yaml.YAMLToJSON(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("error decoding embedded policy: %w", err)
	}
	patchJSON, err := yaml.YAMLToJSON(overlayYAML)
	if err != nil {
		return nil, fmt.Errorf("error decoding policy overlay: %w", err)
	}
	merged, err := jsonpatch.MergePatch(baseJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("error merging policy overlay: %w", err)
	}
	p := &Policy{}
	// JSON is a YAML subset, the merged document decodes directly.
	if err := yaml.Unmarshal(merged, p); err != nil {
		return nil, fmt.Errorf("error decoding merged policy: %w", err)
	}
	return p, nil
}

// Marshal renders p as YAML, for the effective-policy listing.
func (p *Policy) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Classifier compiles p's rule table.
func (p *Policy) Classifier() (*classify.Classifier, error) {
	c := &classify.Classifier{}
	for _, cr := range p.Categories {
		cat, err := classify.ParseCategory(cr.Category)
		if err != nil {
			return nil, err
		}
		for _, r := range cr.Rules {
			if err := c.Add(cat, r.Name, r.When); err != nil {
				return nil, fmt.Errorf("category %s: %w", cr.Category, err)
			}
		}
	}
	return c, nil
}

package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultBuiltins are host-language built-ins and common stdlib method
// names that carry no structural information as call targets.
var defaultBuiltins = []string{
	"print", "len", "str", "int", "float", "bool", "dict", "list", "set",
	"tuple", "open", "range", "enumerate", "zip", "map", "filter", "sum",
	"max", "min", "abs", "isinstance", "hasattr", "getattr", "setattr",
	"type", "id", "iter", "next", "sorted", "reversed", "any", "all",
	"get", "items", "keys", "values", "append", "extend", "pop", "remove",
	"join", "split", "strip", "replace", "format", "startswith", "endswith",
	"exists", "isdir", "isfile", "makedirs", "listdir", "walk",
	"load", "dump", "loads", "dumps", "read", "write", "readline",
}

// defaultKeywords are Jac-specific keywords that surface as call-like
// expressions after conversion.
var defaultKeywords = []string{
	"visit", "spawn", "disengage", "report", "here", "root",
	"edge_in", "edge_out", "refs", "filter_on", "OPath", "jid",
}

// ExclusionSet holds names never recorded as call targets. It is built
// once at startup and treated as immutable afterwards.
type ExclusionSet struct {
	builtins map[string]bool
	keywords map[string]bool
}

// exclusionConfig is the on-disk YAML shape for custom exclusion sets.
type exclusionConfig struct {
	Builtins []string `yaml:"builtins"`
	Keywords []string `yaml:"keywords"`
}

// DefaultExclusions returns the built-in exclusion set.
func DefaultExclusions() *ExclusionSet {
	return newExclusionSet(defaultBuiltins, defaultKeywords)
}

// LoadExclusions reads an exclusion set from a YAML file. A list left
// empty in the file falls back to the corresponding default.
func LoadExclusions(path string) (*ExclusionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exclusion config %s: %w", path, err)
	}

	var cfg exclusionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse exclusion config %s: %w", path, err)
	}

	builtins := cfg.Builtins
	if len(builtins) == 0 {
		builtins = defaultBuiltins
	}
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}

	return newExclusionSet(builtins, keywords), nil
}

func newExclusionSet(builtins, keywords []string) *ExclusionSet {
	es := &ExclusionSet{
		builtins: make(map[string]bool, len(builtins)),
		keywords: make(map[string]bool, len(keywords)),
	}
	for _, name := range builtins {
		es.builtins[name] = true
	}
	for _, name := range keywords {
		es.keywords[name] = true
	}
	return es
}

// Excluded reports whether a name must not be recorded as a call target.
func (es *ExclusionSet) Excluded(name string) bool {
	return es.builtins[name] || es.keywords[name]
}

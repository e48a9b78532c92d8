package strictjson

// parseConfig holds the small set of Parse-time choices exposed through
// functional options, in the builder-style functional-options pattern
// used elsewhere in this codebase family for per-call tuning knobs.
type parseConfig struct {
	ordered bool
}

var defaultParseConfig = parseConfig{ordered: true}

// ParseOption configures a single call to Parse.
type ParseOption func(*parseConfig)

// WithOrderedObjects selects whether objects preserve the key order they
// were written in (the default) or are built as the O(1)-lookup
// unordered backend. See object.go.
func WithOrderedObjects(ordered bool) ParseOption {
	return func(c *parseConfig) { c.ordered = ordered }
}

package reconcile

import "strings"

// RewriteRule replaces every literal occurrence of From with To.
type RewriteRule struct {
	From string `mapstructure:"from" json:"from"`
	To   string `mapstructure:"to" json:"to"`
}

// RewriteRules is an ordered list of rules. Order matters when tokens overlap.
type RewriteRules []RewriteRule

// Transform applies every rule in declared order, each one to the output of the
// previous rule. Values without any from-token are returned unchanged.
func Transform(value string, rules RewriteRules) string {
	for _, r := range rules {
		if r.From == "" {
			continue
		}
		value = strings.ReplaceAll(value, r.From, r.To)
	}
	return value
}

// Present returns the rules whose from-token occurs in value, in declared order.
func (rs RewriteRules) Present(value string) RewriteRules {
	var out RewriteRules
	for _, r := range rs {
		if r.From != "" && strings.Contains(value, r.From) {
			out = append(out, r)
		}
	}
	return out
}

// HasFromToken reports whether value contains any from-token.
func (rs RewriteRules) HasFromToken(value string) bool {
	for _, r := range rs {
		if r.From != "" && strings.Contains(value, r.From) {
			return true
		}
	}
	return false
}

// StartsSegment reports whether any '.' or '_' separated segment of value starts
// with a from-token.
func (rs RewriteRules) StartsSegment(value string) bool {
	segments := strings.FieldsFunc(value, func(r rune) bool {
		return r == '.' || r == '_'
	})
	for _, seg := range segments {
		for _, r := range rs {
			if r.From != "" && strings.HasPrefix(seg, r.From) {
				return true
			}
		}
	}
	return false
}

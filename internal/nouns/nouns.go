// Package nouns decides whether two values are the same English noun in
// different forms. The pipeline uses it to drop suggestions that only
// differ from the source value by number ("banana" vs "bananas").
package nouns

import (
	"strings"

	pluralize "github.com/gertd/go-pluralize"
)

// Comparer reports whether two values name the same noun.
type Comparer interface {
	Equal(a, b string) bool
}

// PluralComparer treats case and singular/plural form as insignificant.
type PluralComparer struct {
	client *pluralize.Client
}

// NewComparer returns a Comparer backed by English pluralization rules.
func NewComparer() *PluralComparer {
	return &PluralComparer{client: pluralize.NewClient()}
}

// Equal reports whether a and b are the same word up to case and number.
// "Banana" equals "bananas"; "banana" does not equal "bandana".
func (c *PluralComparer) Equal(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	return c.client.Singular(a) == c.client.Singular(b)
}

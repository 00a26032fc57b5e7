package nouns

import "testing"

func TestEqual(t *testing.T) {
	c := NewComparer()

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"identical", "banana", "banana", true},
		{"case only", "Banana", "banana", true},
		{"singular vs plural", "banana", "bananas", true},
		{"plural vs singular", "Bananas", "Banana", true},
		{"irregular plural", "person", "people", true},
		{"both plural forms", "people", "persons", true},
		{"different words", "banana", "bandana", false},
		{"shared prefix", "cat", "cathedral", false},
		{"entity rename", "Apple", "Apple Inc.", false},
		{"both empty", "", "", true},
		{"one empty", "banana", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

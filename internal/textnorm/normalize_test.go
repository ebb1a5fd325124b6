package textnorm

import (
	"reflect"
	"testing"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "  I   am\there ", "I am here"},
		{"strips trailing period", "I am here.", "I am here"},
		{"strips trailing run", "Really??", "Really"},
		{"strips ellipsis", "Well…", "Well"},
		{"keeps interior punctuation", "don't stop. ever", "don't stop. ever"},
		{"curly single quote", "doesn’t", "doesn't"},
		{"curly double quotes", "“hello”", `"hello"`},
		{"empty", "", ""},
		{"only punctuation", "...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.in); got != tt.want {
				t.Errorf("Display(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayIdempotent(t *testing.T) {
	inputs := []string{
		"I am here.", "  spaced   out  ", "doesn’t!!", "", "café...",
		"Really?? No…", "“quoted”",
	}
	for _, in := range inputs {
		once := Display(in)
		twice := Display(once)
		if once != twice {
			t.Errorf("Display not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestComparisonKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"I am here.", "iamhere"},
		{"i am here", "iamhere"},
		{"doesn't", "doesnt"},
		{"doesn’t", "doesnt"},
		{"DOESN'T!!", "doesnt"},
		{"It's 2 o'clock", "its2oclock"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ComparisonKey(tt.in); got != tt.want {
			t.Errorf("ComparisonKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComparisonKeyIdempotent(t *testing.T) {
	inputs := []string{"I am here.", "doesn’t", "A, B; C", "Café!"}
	for _, in := range inputs {
		once := ComparisonKey(in)
		if twice := ComparisonKey(once); once != twice {
			t.Errorf("ComparisonKey not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestComparisonKeyVariantsAgree(t *testing.T) {
	// Case, punctuation, and quote-style variants of the same answer must
	// produce identical keys.
	groups := [][]string{
		{"I am here.", "i am here", "I AM HERE!", "i  am  here"},
		{"doesn't", "doesn’t", "Doesnt", "doesn't."},
	}
	for _, group := range groups {
		want := ComparisonKey(group[0])
		for _, v := range group[1:] {
			if got := ComparisonKey(v); got != want {
				t.Errorf("ComparisonKey(%q) = %q, want %q (same as %q)", v, got, want, group[0])
			}
		}
	}
}

func TestSplitMulti(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b, c", []string{"a", "b", "c"}},
		{"a;b\nc", []string{"a", "b", "c"}},
		{"a,,b,  ,c", []string{"a", "b", "c"}},
		{" , ; \n ", nil},
		{"", nil},
		{"single", []string{"single"}},
	}
	for _, tt := range tests {
		if got := SplitMulti(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitMulti(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

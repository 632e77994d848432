package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tk := NewTokenizer(true)
	tests := []struct {
		input string
		want  []string
	}{
		{"The house is blue.", []string{"the", "house", "is", "blue", "."}},
		{"the houses.", []string{"the", "houses", "."}},
		{
			"There are not, therefore, any amendments to the agenda for Friday.",
			[]string{"there", "are", "not", ",", "therefore", ",", "any", "amendments", "to", "the", "agenda", "for", "friday", "."},
		},
		{"", nil},
		{"  spaces  ", []string{"spaces"}},
		{"Café RÉSUMÉ", []string{"café", "résumé"}},
		{"3,000 euros (approx.)", []string{"3,000", "euros", "(", "approx", ".", ")"}},
		{"well-known l'Europe", []string{"well-known", "l'europe"}},
		{"¿Qué?", []string{"¿", "qué", "?"}},
	}
	for _, tt := range tests {
		got := tk.Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeKeepCase(t *testing.T) {
	got := NewTokenizer(false).Tokenize("The House")
	want := []string{"The", "House"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestTokenizeAll(t *testing.T) {
	got := NewTokenizer(true).TokenizeAll([]string{"A b", "C."})
	want := [][]string{{"a", "b"}, {"c", "."}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeAll = %q, want %q", got, want)
	}
}

func TestNormalizeWhitespaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello\nworld", "hello world"},
		{"  a   b\t\r\nc  ", "a b c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeWhitespaces(tt.input); got != tt.want {
			t.Errorf("NormalizeWhitespaces(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

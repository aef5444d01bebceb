package entsent

import (
	"reflect"
	"testing"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"John is great!", []string{"John", "is", "great", "!"}},
		{"Hello, world.", []string{"Hello", ",", "world", "."}},
		{"Don't stop", []string{"Do", "n't", "stop"}},
		{"(Ana) paid $100", []string{"(", "Ana", ")", "paid", "$", "100"}},
		{"“Janša” je rekel", []string{`"`, "Janša", `"`, "je", "rekel"}},
		{"U.S.A. is big", []string{"U.S.A.", "is", "big"}},
		{"", nil},
	}

	tokenizer := NewIterTokenizer()
	for _, tt := range tests {
		if got := tokenizer.Tokenize(tt.text); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Tokenize(%q): expected %q, got %q", tt.text, tt.expected, got)
		}
	}
}

func TestTokenizerOptions(t *testing.T) {
	tokenizer := NewIterTokenizer(
		UsingIsUnsplittable(func(s string) bool { return s == "C++," }),
		UsingContractions([]string{}),
	)
	got := tokenizer.Tokenize("C++, don't")
	expected := []string{"C++,", "don't"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestWordTokenizer(t *testing.T) {
	tests := []struct {
		lang     Language
		text     string
		expected []string
	}{
		{Slovenian, "To je npr. dober film, itd.", []string{"To", "je", "npr.", "dober", "film", ",", "itd."}},
		{Slovenian, "Dr. Novak", []string{"Dr.", "Novak"}},
		{Slovenian, "Don't", []string{"Don't"}},
		{English, "Don't go, Mrs. Smith", []string{"Do", "n't", "go", ",", "Mrs.", "Smith"}},
		{German, "Äpfel, Birnen usw.", []string{"Äpfel", ",", "Birnen", "usw."}},
	}

	for _, tt := range tests {
		if got := NewWordTokenizer(tt.lang).Tokenize(tt.text); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s Tokenize(%q): expected %q, got %q", tt.lang, tt.text, tt.expected, got)
		}
	}
}

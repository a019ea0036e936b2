package es

import (
	"strings"
	"testing"
)

func TestWordToPhonemes(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// Digraphs.
		{"mucho", "mˈuʧo"},
		{"llamar", "ʝamˈaɾ"},
		{"perro", "pˈero"},
		// The u of qu/gu is silent but still counts for stress placement.
		{"queso", "kesˈo"},
		{"guerra", "ɡerˈa"},
		// Context rules.
		{"cena", "sˈena"},
		{"casa", "kˈasa"},
		{"gente", "xˈente"},
		{"gato", "ɡˈato"},
		{"niño", "nˈiɲo"},
		{"jota", "xˈota"},
		// Silent h.
		{"hola", "ˈola"},
		// Written accent decides stress.
		{"café", "kafˈe"},
		// z is seseo /s/.
		{"zapato", "sapˈato"},
		// Monosyllables carry no stress marker.
		{"sol", "sol"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := wordToPhonemes(tt.word); got != tt.want {
				t.Errorf("wordToPhonemes(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestStressPosition(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"casa", 1},   // ends in vowel: penultimate of 2
		{"ciudad", 3}, // ends in consonant: last
		{"café", 2},   // written accent
		{"sol", 1},
	}
	for _, tt := range tests {
		chars := []rune(tt.word)
		if got := stressPosition(chars, countSyllables(chars)); got != tt.want {
			t.Errorf("stressPosition(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestPhonemize(t *testing.T) {
	g := New()

	got := g.Phonemize("hola mundo")
	if got != "ˈola mˈundo" {
		t.Errorf("Phonemize = %q, want %q", got, "ˈola mˈundo")
	}

	// Punctuation tokens pass through.
	got = g.Phonemize("hola , mundo !")
	if !strings.Contains(got, ",") || !strings.Contains(got, "!") {
		t.Errorf("punctuation lost: %q", got)
	}

	if g.Phonemize("") != "" {
		t.Error("Phonemize(\"\") should be empty")
	}
}

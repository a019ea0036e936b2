package g2p

import (
	"testing"

	"github.com/tantk/kokoro-g2p/tokenizer"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"zh", Mandarin, true},
		{"zh-cn", Mandarin, true},
		{"mandarin", Mandarin, true},
		{"cmn", Mandarin, true},
		{"es", Spanish, true},
		{"spanish", Spanish, true},
		{"tlh", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseLanguage(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseLanguage(%q) should fail", tt.in)
		}
	}
}

func TestProcessMandarin(t *testing.T) {
	p, err := New(Mandarin)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res := p.Process("你好")
	// Character-level fallback segmentation still resolves both characters;
	// third-tone sandhi applies across the sentence.
	if res.Phonemes != "ㄋㄧ↗ ㄏㄠ↓" {
		t.Errorf("phonemes = %q, want %q", res.Phonemes, "ㄋㄧ↗ ㄏㄠ↓")
	}
	if res.Tokens[0] != tokenizer.PadID || res.Tokens[len(res.Tokens)-1] != tokenizer.PadID {
		t.Error("tokens must be pad-wrapped")
	}
	if len(res.Tokens) != len([]rune(res.Phonemes))+2 {
		t.Errorf("token count = %d, want %d", len(res.Tokens), len([]rune(res.Phonemes))+2)
	}
}

func TestProcessSpanish(t *testing.T) {
	p, err := New(Spanish)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res := p.Process("hola mundo")
	if res.Phonemes != "ˈola mˈundo" {
		t.Errorf("phonemes = %q, want %q", res.Phonemes, "ˈola mˈundo")
	}
	if len(res.Tokens) <= 2 {
		t.Errorf("tokens = %v, want content ids", res.Tokens)
	}
}

func TestLanguageString(t *testing.T) {
	if Mandarin.String() != "zh" || Spanish.String() != "es" {
		t.Errorf("String() = %q/%q, want zh/es", Mandarin, Spanish)
	}
}

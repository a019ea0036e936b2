// Package es converts Spanish text to IPA phoneme strings. Spanish
// orthography is regular enough that local substitution rules plus the
// standard stress rules cover it; there is no dictionary.
//
// Seseo pronunciations are used throughout (c before e/i and z map to /s/,
// ll to /ʝ/) for broader coverage across dialects.
package es

import "strings"

// G2P converts Spanish text to phoneme strings.
type G2P struct{}

// New creates a Spanish G2P.
func New() *G2P {
	return &G2P{}
}

// Phonemize converts normalized Spanish text to its phoneme string.
// Words are converted independently and joined with single spaces;
// punctuation tokens pass through.
func (g *G2P) Phonemize(text string) string {
	var b strings.Builder
	for i, word := range strings.Fields(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		if isPunct(word) {
			b.WriteString(word)
		} else {
			b.WriteString(wordToPhonemes(word))
		}
	}
	return b.String()
}

func isPunct(s string) bool {
	for _, c := range s {
		switch c {
		case '.', ',', '!', '?', ';', ':', '—', '…', '"', '(', ')', '¡', '¿':
		default:
			return false
		}
	}
	return s != ""
}

// wordToPhonemes converts a single word, inserting the stress marker before
// the stressed vowel of polysyllabic words.
func wordToPhonemes(word string) string {
	chars := []rune(strings.ToLower(word))
	total := countSyllables(chars)
	stressPos := stressPosition(chars, total)

	var b strings.Builder
	syllable := 0

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		var next, next2 rune
		if i+1 < len(chars) {
			next = chars[i+1]
		}
		if i+2 < len(chars) {
			next2 = chars[i+2]
		}

		if isVowel(c) {
			syllable++
			if syllable == stressPos && total > 1 {
				b.WriteRune('ˈ')
			}
		}

		// Digraphs consume two characters.
		switch {
		case c == 'c' && next == 'h':
			b.WriteRune('ʧ')
			i++
			continue
		case c == 'l' && next == 'l':
			b.WriteRune('ʝ')
			i++
			continue
		case c == 'r' && next == 'r':
			b.WriteRune('r')
			i++
			continue
		case c == 'q' && next == 'u':
			b.WriteRune('k')
			i++
			continue
		case c == 'g' && next == 'u' && isFrontVowel(next2):
			b.WriteRune('ɡ')
			i++
			continue
		case c == 'g' && next == 'u' && isBackVowel(next2):
			b.WriteString("ɡw")
			i++
			continue
		}

		switch c {
		case 'a', 'á':
			b.WriteRune('a')
		case 'e', 'é':
			b.WriteRune('e')
		case 'i', 'í':
			b.WriteRune('i')
		case 'y':
			// Consonant at syllable onset, vowel elsewhere.
			if i == 0 || !isVowel(prev(chars, i)) {
				b.WriteRune('ʝ')
			} else {
				b.WriteRune('i')
			}
		case 'o', 'ó':
			b.WriteRune('o')
		case 'u', 'ú', 'ü':
			b.WriteRune('u')
		case 'b', 'v':
			b.WriteRune('b')
		case 'c':
			if isFrontVowel(next) {
				b.WriteRune('s')
			} else {
				b.WriteRune('k')
			}
		case 'd':
			b.WriteRune('d')
		case 'f':
			b.WriteRune('f')
		case 'g':
			if isFrontVowel(next) {
				b.WriteRune('x')
			} else {
				b.WriteRune('ɡ')
			}
		case 'h':
			// Silent.
		case 'j':
			b.WriteRune('x')
		case 'k':
			b.WriteRune('k')
		case 'l':
			b.WriteRune('l')
		case 'm':
			b.WriteRune('m')
		case 'n':
			b.WriteRune('n')
		case 'ñ':
			b.WriteRune('ɲ')
		case 'p':
			b.WriteRune('p')
		case 'r':
			// Trilled word-initially and after n, l, s; a tap elsewhere.
			switch prev(chars, i) {
			case 0, 'n', 'l', 's':
				b.WriteRune('r')
			default:
				b.WriteRune('ɾ')
			}
		case 's':
			b.WriteRune('s')
		case 't':
			b.WriteRune('t')
		case 'w':
			b.WriteRune('w')
		case 'x':
			b.WriteString("ks")
		case 'z':
			b.WriteRune('s')
		case '.', ',', '!', '?', ';', ':':
			b.WriteRune(c)
		}
	}
	return b.String()
}

func prev(chars []rune, i int) rune {
	if i == 0 {
		return 0
	}
	return chars[i-1]
}

func isVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'á', 'é', 'í', 'ó', 'ú', 'ü':
		return true
	}
	return false
}

func isFrontVowel(c rune) bool {
	return c == 'e' || c == 'i' || c == 'é' || c == 'í'
}

func isBackVowel(c rune) bool {
	return c == 'a' || c == 'o' || c == 'á' || c == 'ó'
}

func countSyllables(chars []rune) int {
	n := 0
	for _, c := range chars {
		if isVowel(c) {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// stressPosition returns the 1-indexed vowel that carries stress. A written
// accent always decides; otherwise words ending in a vowel, n, or s stress
// the penultimate syllable and the rest stress the last.
func stressPosition(chars []rune, total int) int {
	if total <= 1 {
		return 1
	}

	syllable := 0
	for _, c := range chars {
		if isVowel(c) {
			syllable++
		}
		switch c {
		case 'á', 'é', 'í', 'ó', 'ú':
			return syllable
		}
	}

	last := chars[len(chars)-1]
	if isVowel(last) || last == 'n' || last == 's' {
		if total-1 >= 1 {
			return total - 1
		}
		return 1
	}
	return total
}

// Package tokenizer maps phoneme strings to token-id sequences for the TTS
// model. The vocabulary is fixed and shared by every language module; one
// character maps to one id, sequences are wrapped in padding ids and
// truncated to a maximum length.
package tokenizer

import "github.com/rs/zerolog/log"

// MaxTokens is the maximum number of content ids per sequence, excluding
// the two padding ids.
const MaxTokens = 510

// PadID wraps every sequence at the start and end.
const PadID int64 = 0

// ID returns the token id for a phoneme character.
func ID(c rune) (int64, bool) {
	id, ok := vocab[c]
	return id, ok
}

// Char returns the phoneme character for a token id.
func Char(id int64) (rune, bool) {
	c, ok := idToChar[id]
	return c, ok
}

// IsValid reports whether c is in the vocabulary.
func IsValid(c rune) bool {
	_, ok := vocab[c]
	return ok
}

// ToIDs converts a phoneme string to token ids wrapped with padding and
// truncated to MaxTokens content ids. Characters outside the vocabulary are
// skipped with a warning, never an error.
func ToIDs(phonemes string) []int64 {
	ids := make([]int64, 0, len(phonemes)+2)
	ids = append(ids, PadID)

	for _, c := range phonemes {
		if id, ok := vocab[c]; ok {
			ids = append(ids, id)
		} else {
			log.Warn().
				Str("char", string(c)).
				Uint32("codepoint", uint32(c)).
				Msg("phoneme character not in vocabulary")
		}
	}

	ids = append(ids, PadID)

	if len(ids) > MaxTokens+2 {
		ids = ids[:MaxTokens+1]
		ids = append(ids, PadID)
	}
	return ids
}

// ToPhonemes converts token ids back to the phoneme string, dropping
// padding and unknown ids.
func ToPhonemes(ids []int64) string {
	out := make([]rune, 0, len(ids))
	for _, id := range ids {
		if id == PadID {
			continue
		}
		if c, ok := idToChar[id]; ok {
			out = append(out, c)
		}
	}
	return string(out)
}

// Vocabulary returns every phoneme character, ordered by token id.
func Vocabulary() []rune {
	out := make([]rune, 0, len(vocab))
	for id := int64(0); id <= bopomofoBase+int64(bopomofoLast-bopomofoFirst); id++ {
		if c, ok := idToChar[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

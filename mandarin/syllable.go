package mandarin

import "strconv"

// Syllable is a resolved pinyin syllable: a latin spelling without tone
// marks and a tone number 1-5, where 5 is the neutral (light) tone.
// The sandhi engine rewrites only the tone; the spelling never changes
// after resolution.
type Syllable struct {
	Spelling string
	Tone     int
}

// ParsePinyin parses a tone-annotated dictionary entry such as "ni3".
// A trailing ASCII digit is the tone; a missing digit means neutral tone 5.
func ParsePinyin(s string) Syllable {
	if s == "" {
		return Syllable{Tone: 5}
	}
	last := s[len(s)-1]
	if last >= '0' && last <= '9' {
		return Syllable{Spelling: s[:len(s)-1], Tone: int(last - '0')}
	}
	return Syllable{Spelling: s, Tone: 5}
}

// String returns the syllable with its tone digit appended, e.g. "ni3".
func (s Syllable) String() string {
	return s.Spelling + strconv.Itoa(s.Tone)
}

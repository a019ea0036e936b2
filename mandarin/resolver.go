package mandarin

import (
	"strings"

	"github.com/tantk/kokoro-g2p/segment"
)

// Resolver turns segmented words into tone-annotated syllables using the
// three-tier lookup cascade: phrase dictionary, POS-conditioned character
// dictionary, default character dictionary.
type Resolver struct {
	dicts *Dicts
}

// NewResolver creates a Resolver over the given dictionaries, or the
// compiled-in defaults when d is nil.
func NewResolver(d *Dicts) *Resolver {
	if d == nil {
		d = DefaultDicts()
	}
	return &Resolver{dicts: d}
}

// Resolve returns the syllables for one segmented word, in reading order.
//
// A phrase-dictionary hit always wins: multi-character pronunciation context
// cannot be recovered once the word is decomposed into single characters.
// On a miss, each Han character falls through POS-conditioned lookup to the
// default reading; non-Han code points are skipped. Characters missing from
// every tier contribute no syllable and are reported in dropped.
func (r *Resolver) Resolve(word, tag string) (syllables []Syllable, dropped []rune) {
	if entry, ok := r.dicts.Phrase(word); ok {
		for _, p := range strings.Fields(entry) {
			syllables = append(syllables, ParsePinyin(p))
		}
		return syllables, nil
	}
	for _, c := range word {
		if !segment.IsHan(c) {
			continue
		}
		if p, ok := r.dicts.ByPOS(c, tag); ok {
			syllables = append(syllables, ParsePinyin(p))
			continue
		}
		if p, ok := r.dicts.Char(c); ok {
			syllables = append(syllables, ParsePinyin(p))
			continue
		}
		dropped = append(dropped, c)
	}
	return syllables, dropped
}

// Package mandarin converts normalized Mandarin text into a zhuyin-based
// phoneme string with tone glyphs.
//
// The pipeline per sentence is resolver, tone sandhi, phoneme mapper:
// pinyin resolution runs per segmented word, sandhi runs over the whole
// flattened syllable sequence crossing word boundaries, and the mapper
// renders each syllable as zhuyin plus a tone glyph. All stages are pure
// transformations over immutable dictionaries and safe for concurrent use.
package mandarin

import "github.com/tantk/kokoro-g2p/segment"

// G2P converts Mandarin text to phoneme strings.
type G2P struct {
	seg      segment.Segmenter
	resolver *Resolver
}

// Option configures a G2P.
type Option func(*G2P)

// WithDicts substitutes the pinyin dictionaries, e.g. trimmed tables in
// tests.
func WithDicts(d *Dicts) Option {
	return func(g *G2P) {
		g.resolver = NewResolver(d)
	}
}

// New creates a Mandarin G2P over the given segmenter collaborator.
func New(seg segment.Segmenter, opts ...Option) *G2P {
	g := &G2P{
		seg:      seg,
		resolver: NewResolver(nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phonemize segments text and returns its phoneme string.
func (g *G2P) Phonemize(text string) string {
	return g.PhonemizeSegments(g.seg.Segment(text))
}

// PhonemizeSegments converts an already segmented sentence. Characters the
// resolver cannot place are silently absent from the output; use Resolver
// directly to audit them.
func (g *G2P) PhonemizeSegments(segs []segment.Segment) string {
	var seq []Syllable
	for _, s := range segs {
		syls, _ := g.resolver.Resolve(s.Text, s.Tag)
		seq = append(seq, syls...)
	}
	return Render(ApplySandhi(seq))
}

// Resolver returns the resolver in use, for callers that need the
// dropped-character side channel.
func (g *G2P) Resolver() *Resolver {
	return g.resolver
}

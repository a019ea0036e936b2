// Package g2p converts text to phoneme strings and TTS token ids across the
// supported languages. Language-specific engines live in subpackages; this
// package dispatches over the closed language set and tokenizes the result.
package g2p

import (
	"fmt"

	"github.com/tantk/kokoro-g2p/es"
	"github.com/tantk/kokoro-g2p/mandarin"
	"github.com/tantk/kokoro-g2p/segment"
	"github.com/tantk/kokoro-g2p/tokenizer"
)

// Language selects a per-language G2P engine. The set is fixed at build
// time.
type Language int

const (
	// Mandarin is Mandarin Chinese (zh-CN).
	Mandarin Language = iota
	// Spanish is rule-based Spanish.
	Spanish
)

// String returns the language code.
func (l Language) String() string {
	switch l {
	case Mandarin:
		return "zh"
	case Spanish:
		return "es"
	}
	return "unknown"
}

// ParseLanguage maps a language code or name to a Language.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "zh", "zh-cn", "zh-CN", "cmn", "chinese", "mandarin":
		return Mandarin, nil
	case "es", "es-es", "es-mx", "spanish":
		return Spanish, nil
	}
	return 0, fmt.Errorf("unsupported language %q", s)
}

// Result holds the output of one sentence.
type Result struct {
	// Phonemes is the phoneme string, one symbol set per language,
	// syllables or words separated by single spaces.
	Phonemes string
	// Tokens is the phoneme string mapped through the shared model
	// vocabulary, wrapped in padding ids.
	Tokens []int64
}

// Pipeline converts text in one language. A Pipeline is immutable after
// construction and safe for concurrent use.
type Pipeline struct {
	lang  Language
	seg   segment.Segmenter
	dicts *mandarin.Dicts

	zh *mandarin.G2P
	es *es.G2P
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSegmenter sets the Mandarin word segmenter. Without it the pipeline
// falls back to character-level segmentation, which loses phrase-level
// pronunciation context.
func WithSegmenter(seg segment.Segmenter) Option {
	return func(p *Pipeline) {
		p.seg = seg
	}
}

// WithMandarinDicts substitutes the Mandarin pinyin dictionaries.
func WithMandarinDicts(d *mandarin.Dicts) Option {
	return func(p *Pipeline) {
		p.dicts = d
	}
}

// New creates a Pipeline for the given language.
func New(lang Language, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		lang: lang,
		seg:  segment.Chars{},
	}
	for _, opt := range opts {
		opt(p)
	}

	switch lang {
	case Mandarin:
		var mopts []mandarin.Option
		if p.dicts != nil {
			mopts = append(mopts, mandarin.WithDicts(p.dicts))
		}
		p.zh = mandarin.New(p.seg, mopts...)
	case Spanish:
		p.es = es.New()
	default:
		return nil, fmt.Errorf("unsupported language %d", lang)
	}
	return p, nil
}

// Language returns the pipeline's language.
func (p *Pipeline) Language() Language {
	return p.lang
}

// Phonemize converts normalized text to its phoneme string.
func (p *Pipeline) Phonemize(text string) string {
	switch p.lang {
	case Mandarin:
		return p.zh.Phonemize(text)
	case Spanish:
		return p.es.Phonemize(text)
	}
	return ""
}

// Process converts normalized text to its phoneme string and token ids.
func (p *Pipeline) Process(text string) Result {
	phonemes := p.Phonemize(text)
	return Result{
		Phonemes: phonemes,
		Tokens:   tokenizer.ToIDs(phonemes),
	}
}

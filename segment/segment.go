// Package segment defines the word-segmentation collaborator consumed by the
// Mandarin G2P pipeline. A Segmenter splits normalized sentence text into
// POS-tagged words; the pipeline itself never segments.
package segment

// Segment is one token of a segmented sentence. Tag is a part-of-speech code
// whose first letter is the coarse category (all verb subtags start with "v",
// nouns with "n", and so on).
type Segment struct {
	Text string
	Tag  string
}

// Segmenter splits normalized text into ordered segments covering the whole
// input. Implementations must be deterministic: the same text yields the
// same segmentation.
type Segmenter interface {
	Segment(text string) []Segment
}

// Chars is a degraded fallback segmenter: every Han character becomes its
// own segment and maximal non-Han runs are kept whole, all tagged "x".
// Phrase-level pronunciation context is lost, so prefer a real segmenter
// such as Jieba.
type Chars struct{}

// Segment implements Segmenter.
func (Chars) Segment(text string) []Segment {
	var out []Segment
	var run []rune
	flush := func() {
		if len(run) > 0 {
			out = append(out, Segment{Text: string(run), Tag: "x"})
			run = run[:0]
		}
	}
	for _, r := range text {
		if IsHan(r) {
			flush()
			out = append(out, Segment{Text: string(r), Tag: "x"})
		} else {
			run = append(run, r)
		}
	}
	flush()
	return out
}

package segment

import (
	"fmt"

	"github.com/wangbin/jiebago/posseg"
)

// Jieba segments text with the jiebago port of the jieba tokenizer,
// producing POS-tagged segments.
type Jieba struct {
	seg posseg.Segmenter
}

// NewJieba loads the jieba frequency dictionary from dictPath and returns a
// ready segmenter. The returned value is safe for concurrent use.
func NewJieba(dictPath string) (*Jieba, error) {
	j := &Jieba{}
	if err := j.seg.LoadDictionary(dictPath); err != nil {
		return nil, fmt.Errorf("load jieba dictionary: %w", err)
	}
	return j, nil
}

// Segment implements Segmenter.
func (j *Jieba) Segment(text string) []Segment {
	var out []Segment
	for s := range j.seg.Cut(text, true) {
		out = append(out, Segment{Text: s.Text(), Tag: s.Pos()})
	}
	return out
}

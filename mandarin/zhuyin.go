package mandarin

import "strings"

// Zhuyin (bopomofo) rendering of resolved syllables. Each syllable maps to
// zhuyin symbols via a whole-syllable override table or an initial/final
// decomposition, then gets a tone glyph suffix. Tone 5 carries no glyph.

// toneGlyphs indexes tones 1-4; index 0 is unused.
var toneGlyphs = [5]rune{0, '→', '↗', '↓', '↘'}

// initialZhuyin maps pinyin initial consonants to zhuyin.
var initialZhuyin = map[string]string{
	"b":  "ㄅ",
	"p":  "ㄆ",
	"m":  "ㄇ",
	"f":  "ㄈ",
	"d":  "ㄉ",
	"t":  "ㄊ",
	"n":  "ㄋ",
	"l":  "ㄌ",
	"g":  "ㄍ",
	"k":  "ㄎ",
	"h":  "ㄏ",
	"j":  "ㄐ",
	"q":  "ㄑ",
	"x":  "ㄒ",
	"zh": "ㄓ",
	"ch": "ㄔ",
	"sh": "ㄕ",
	"r":  "ㄖ",
	"z":  "ㄗ",
	"c":  "ㄘ",
	"s":  "ㄙ",
	"y":  "ㄧ", // glide; normally absorbed into the final
	"w":  "ㄨ",
}

// finalZhuyin maps pinyin finals (medial + nucleus + coda) to zhuyin.
var finalZhuyin = map[string]string{
	"a": "ㄚ",
	"o": "ㄛ",
	"e": "ㄜ",
	"i": "ㄧ",
	"u": "ㄨ",
	"v": "ㄩ", // ü written as v
	"ü": "ㄩ",

	"ai":  "ㄞ",
	"ao":  "ㄠ",
	"an":  "ㄢ",
	"ang": "ㄤ",

	"ei":  "ㄟ",
	"en":  "ㄣ",
	"eng": "ㄥ",
	"er":  "ㄦ",

	"ou":  "ㄡ",
	"ong": "ㄨㄥ",

	"ia":   "ㄧㄚ",
	"ie":   "ㄧㄝ",
	"iao":  "ㄧㄠ",
	"iu":   "ㄧㄡ",
	"ian":  "ㄧㄢ",
	"in":   "ㄧㄣ",
	"iang": "ㄧㄤ",
	"ing":  "ㄧㄥ",
	"iong": "ㄩㄥ",

	"ua":   "ㄨㄚ",
	"uo":   "ㄨㄛ",
	"uai":  "ㄨㄞ",
	"ui":   "ㄨㄟ",
	"uan":  "ㄨㄢ",
	"un":   "ㄨㄣ",
	"uang": "ㄨㄤ",
	"ueng": "ㄨㄥ",

	"ve":  "ㄩㄝ",
	"üe":  "ㄩㄝ",
	"van": "ㄩㄢ",
	"üan": "ㄩㄢ",
	"vn":  "ㄩㄣ",
	"ün":  "ㄩㄣ",
}

// syllableZhuyin overrides whole syllables whose decomposition is irregular:
// the retroflex-sibilant series with no written final, the yi/wu/yu
// zero-initial series, and the ü substitutions after n, l, j, q, x.
var syllableZhuyin = map[string]string{
	"zhi": "ㄓ",
	"chi": "ㄔ",
	"shi": "ㄕ",
	"ri":  "ㄖ",
	"zi":  "ㄗ",
	"ci":  "ㄘ",
	"si":  "ㄙ",

	"yi":   "ㄧ",
	"ya":   "ㄧㄚ",
	"ye":   "ㄧㄝ",
	"yao":  "ㄧㄠ",
	"you":  "ㄧㄡ",
	"yan":  "ㄧㄢ",
	"yin":  "ㄧㄣ",
	"yang": "ㄧㄤ",
	"ying": "ㄧㄥ",
	"yong": "ㄩㄥ",

	"wu":   "ㄨ",
	"wa":   "ㄨㄚ",
	"wo":   "ㄨㄛ",
	"wai":  "ㄨㄞ",
	"wei":  "ㄨㄟ",
	"wan":  "ㄨㄢ",
	"wen":  "ㄨㄣ",
	"wang": "ㄨㄤ",
	"weng": "ㄨㄥ",

	"yu":   "ㄩ",
	"yue":  "ㄩㄝ",
	"yuan": "ㄩㄢ",
	"yun":  "ㄩㄣ",

	"nv":  "ㄋㄩ",
	"nü":  "ㄋㄩ",
	"lv":  "ㄌㄩ",
	"lü":  "ㄌㄩ",
	"nve": "ㄋㄩㄝ",
	"nüe": "ㄋㄩㄝ",
	"lve": "ㄌㄩㄝ",
	"lüe": "ㄌㄩㄝ",

	"a":   "ㄚ",
	"o":   "ㄛ",
	"e":   "ㄜ",
	"ai":  "ㄞ",
	"ei":  "ㄟ",
	"ao":  "ㄠ",
	"ou":  "ㄡ",
	"an":  "ㄢ",
	"en":  "ㄣ",
	"ang": "ㄤ",
	"eng": "ㄥ",
	"er":  "ㄦ",

	"ju":   "ㄐㄩ",
	"qu":   "ㄑㄩ",
	"xu":   "ㄒㄩ",
	"jue":  "ㄐㄩㄝ",
	"que":  "ㄑㄩㄝ",
	"xue":  "ㄒㄩㄝ",
	"juan": "ㄐㄩㄢ",
	"quan": "ㄑㄩㄢ",
	"xuan": "ㄒㄩㄢ",
	"jun":  "ㄐㄩㄣ",
	"qun":  "ㄑㄩㄣ",
	"xun":  "ㄒㄩㄣ",
}

// syllableToZhuyin converts one pinyin spelling to zhuyin symbols.
// If neither the override table nor the decomposition produces anything,
// the original spelling is passed through unmodified so that every syllable
// contributes something to the output.
func syllableToZhuyin(spelling string) string {
	lower := strings.ToLower(spelling)
	if z, ok := syllableZhuyin[lower]; ok {
		return z
	}

	initial, final := splitInitialFinal(lower)

	var b strings.Builder
	if initial != "" {
		if z, ok := initialZhuyin[initial]; ok {
			b.WriteString(z)
		}
	}
	if final != "" {
		if z, ok := finalZhuyin[final]; ok {
			b.WriteString(z)
		} else {
			// Best effort: map the final character by character.
			for _, c := range final {
				if z, ok := finalZhuyin[string(c)]; ok {
					b.WriteString(z)
				}
			}
		}
	}

	if b.Len() == 0 {
		return spelling
	}
	return b.String()
}

// splitInitialFinal splits a pinyin spelling into initial and final.
// The retroflex digraphs zh/ch/sh are consumed before single-letter
// initials; y and w are treated as part of the final.
func splitInitialFinal(s string) (initial, final string) {
	if len(s) >= 2 {
		switch s[:2] {
		case "zh", "ch", "sh":
			return s[:2], s[2:]
		}
	}
	if len(s) >= 1 {
		switch s[0] {
		case 'b', 'p', 'm', 'f', 'd', 't', 'n', 'l', 'g', 'k', 'h',
			'j', 'q', 'x', 'r', 'z', 'c', 's':
			return s[:1], s[1:]
		}
	}
	return "", s
}

// Render converts a tone-adjusted syllable sequence to the sentence phoneme
// string: zhuyin symbols per syllable, a tone glyph suffix for tones 1-4,
// and a single space between syllables.
func Render(seq []Syllable) string {
	var b strings.Builder
	for i, syl := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(syllableToZhuyin(syl.Spelling))
		if syl.Tone >= 1 && syl.Tone <= 4 {
			b.WriteRune(toneGlyphs[syl.Tone])
		}
	}
	return b.String()
}

package tokenizer

// vocab maps each phoneme character to its model token id. The id layout is
// fixed by the Kokoro model; ids absent from the map are unused slots in
// the model vocabulary.
var vocab = map[rune]int64{
	// Punctuation
	';':      1,
	':':      2,
	',':      3,
	'.':      4,
	'!':      5,
	'?':      6,
	'—':      9,
	'…':      10,
	'"':      11,
	'(':      12,
	')':      13,
	'“': 14, // left double quote
	'”': 15, // right double quote
	' ':      16,
	'̃': 17, // combining tilde

	// Affricate ligatures
	'ʣ':      18,
	'ʥ':      19,
	'ʦ':      20,
	'ʨ':      21,
	'ᵝ':      22,
	'ꭧ': 23,

	// Diphthong vowels (capital letters)
	'A': 24, // eɪ
	'I': 25, // aɪ
	'O': 31, // American oʊ
	'Q': 33, // British əʊ
	'S': 35,
	'T': 36, // American flap ɾ variant
	'W': 39, // aʊ
	'Y': 41, // ɔɪ

	'ᵊ': 42, // small schwa

	// Lowercase letters
	'a': 43,
	'b': 44,
	'c': 45,
	'd': 46,
	'e': 47,
	'f': 48,
	'h': 50,
	'i': 51,
	'j': 52,
	'k': 53,
	'l': 54,
	'm': 55,
	'n': 56,
	'o': 57,
	'p': 58,
	'q': 59,
	'r': 60,
	's': 61,
	't': 62,
	'u': 63,
	'v': 64,
	'w': 65,
	'x': 66,
	'y': 67,
	'z': 68,

	// IPA symbols
	'ɑ': 69,
	'ɐ': 70,
	'ɒ': 71,
	'æ': 72,
	'β': 75,
	'ɔ': 76,
	'ɕ': 77,
	'ç': 78,
	'ɖ': 80,
	'ð': 81,
	'ʤ': 82,
	'ə': 83,
	'ɚ': 85,
	'ɛ': 86,
	'ɜ': 87,
	'ɟ': 90,
	'ɡ': 92,
	'ɥ': 99,
	'ɨ': 101,
	'ɪ': 102,
	'ʝ': 103,
	'ɯ': 110,
	'ɰ': 111,
	'ŋ': 112,
	'ɳ': 113,
	'ɲ': 114,
	'ɴ': 115,
	'ø': 116,
	'ɸ': 118,
	'θ': 119,
	'œ': 120,
	'ɹ': 123,
	'ɾ': 125,
	'ɻ': 126,
	'ʁ': 128,
	'ɽ': 129,
	'ʂ': 130,
	'ʃ': 131,
	'ʈ': 132,
	'ʧ': 133,
	'ʊ': 135,
	'ʋ': 136,
	'ʌ': 138,
	'ɣ': 139,
	'ɤ': 140,
	'χ': 142,
	'ʎ': 143,
	'ʒ': 147,
	'ʔ': 148,

	// Stress and length markers
	'ˈ': 156,
	'ˌ': 157,
	'ː': 158,

	// Aspiration and palatalization
	'ʰ': 162,
	'ʲ': 164,

	// Tone pitch glyphs
	'↓': 169,
	'→': 171,
	'↗': 172,
	'↘': 173,

	'ᵻ': 177,
}

// Bopomofo symbols (U+3105–U+3129) occupy a contiguous block directly above
// the base vocabulary so Mandarin zhuyin output tokenizes.
const (
	bopomofoFirst = 'ㄅ'
	bopomofoLast  = 'ㄩ'
	bopomofoBase  = 178
)

var idToChar map[int64]rune

func init() {
	for r := bopomofoFirst; r <= bopomofoLast; r++ {
		vocab[r] = bopomofoBase + int64(r-bopomofoFirst)
	}
	idToChar = make(map[int64]rune, len(vocab))
	for c, id := range vocab {
		idToChar[id] = c
	}
}

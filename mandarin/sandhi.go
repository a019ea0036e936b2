package mandarin

// Tone sandhi for Mandarin. Three rules apply over the whole sentence
// sequence, crossing word boundaries, in a fixed order:
//
//  1. 一 (yi1): tone 2 before a fourth tone, tone 4 before tones 1-3.
//  2. 不 (bu4): tone 2 before a fourth tone.
//  3. Third-tone runs: in a run of two or more third tones, all but the
//     last become tone 2.
//
// Each rule is a pure sequence transform; the composition is idempotent.

// ApplySandhi returns a copy of the sequence with tones rewritten by the
// three rules. Spellings are never changed. Total: any input, including an
// empty sequence, yields a valid result.
func ApplySandhi(seq []Syllable) []Syllable {
	return thirdToneSandhi(buSandhi(yiSandhi(seq)))
}

// yiSandhi rewrites "yi" with tone 1 according to the following syllable's
// tone. Sentence-final and pre-neutral occurrences keep tone 1.
func yiSandhi(seq []Syllable) []Syllable {
	out := append([]Syllable(nil), seq...)
	for i := range out {
		if out[i].Spelling != "yi" || out[i].Tone != 1 || i+1 >= len(out) {
			continue
		}
		switch out[i+1].Tone {
		case 4:
			out[i].Tone = 2
		case 1, 2, 3:
			out[i].Tone = 4
		}
	}
	return out
}

// buSandhi rewrites "bu" with tone 4 to tone 2 before another fourth tone.
func buSandhi(seq []Syllable) []Syllable {
	out := append([]Syllable(nil), seq...)
	for i := range out {
		if out[i].Spelling == "bu" && out[i].Tone == 4 &&
			i+1 < len(out) && out[i+1].Tone == 4 {
			out[i].Tone = 2
		}
	}
	return out
}

// thirdToneSandhi rewrites each maximal run of two or more consecutive
// third tones so that every syllable but the last carries tone 2.
// Runs of length 1 are untouched.
func thirdToneSandhi(seq []Syllable) []Syllable {
	out := append([]Syllable(nil), seq...)
	for i := 0; i < len(out); {
		if out[i].Tone != 3 {
			i++
			continue
		}
		j := i
		for j+1 < len(out) && out[j+1].Tone == 3 {
			j++
		}
		for k := i; k < j; k++ {
			out[k].Tone = 2
		}
		i = j + 1
	}
	return out
}

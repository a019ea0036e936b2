package mandarin

import "testing"

func makeSyllables(specs ...Syllable) []Syllable {
	return specs
}

func tones(seq []Syllable) []int {
	out := make([]int, len(seq))
	for i, s := range seq {
		out[i] = s.Tone
	}
	return out
}

func equalTones(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplySandhi(t *testing.T) {
	tests := []struct {
		name string
		in   []Syllable
		want []int
	}{
		{
			name: "yi before fourth",
			in:   makeSyllables(Syllable{"yi", 1}, Syllable{"ge", 4}),
			want: []int{2, 4},
		},
		{
			name: "yi before first",
			in:   makeSyllables(Syllable{"yi", 1}, Syllable{"tian", 1}),
			want: []int{4, 1},
		},
		{
			name: "yi before second",
			in:   makeSyllables(Syllable{"yi", 1}, Syllable{"nian", 2}),
			want: []int{4, 2},
		},
		{
			name: "yi before third",
			in:   makeSyllables(Syllable{"yi", 1}, Syllable{"qi", 3}),
			want: []int{4, 3},
		},
		{
			name: "yi before neutral unchanged",
			in:   makeSyllables(Syllable{"yi", 1}, Syllable{"ma", 5}),
			want: []int{1, 5},
		},
		{
			name: "yi sentence-final unchanged",
			in:   makeSyllables(Syllable{"di", 4}, Syllable{"yi", 1}),
			want: []int{4, 1},
		},
		{
			name: "bu before fourth",
			in:   makeSyllables(Syllable{"bu", 4}, Syllable{"shi", 4}),
			want: []int{2, 4},
		},
		{
			name: "bu before third unchanged",
			in:   makeSyllables(Syllable{"bu", 4}, Syllable{"hao", 3}),
			want: []int{4, 3},
		},
		{
			name: "third tone pair",
			in:   makeSyllables(Syllable{"ni", 3}, Syllable{"hao", 3}),
			want: []int{2, 3},
		},
		{
			name: "third tone triple",
			in:   makeSyllables(Syllable{"ni", 3}, Syllable{"hao", 3}, Syllable{"ma", 3}),
			want: []int{2, 2, 3},
		},
		{
			name: "isolated third tone untouched",
			in:   makeSyllables(Syllable{"ni", 3}),
			want: []int{3},
		},
		{
			name: "two separate runs",
			in: makeSyllables(Syllable{"ni", 3}, Syllable{"hao", 3},
				Syllable{"shi", 4}, Syllable{"wo", 3}, Syllable{"xiang", 3}),
			want: []int{2, 3, 4, 2, 3},
		},
		{
			name: "mixed tones untouched",
			in: makeSyllables(Syllable{"ni", 3}, Syllable{"hao", 3},
				Syllable{"shi", 4}, Syllable{"jie", 4}),
			want: []int{2, 3, 4, 4},
		},
		{
			name: "other yi1 spelling with no follower",
			in:   makeSyllables(Syllable{"yi", 1}),
			want: []int{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySandhi(tt.in)
			if !equalTones(tones(got), tt.want) {
				t.Errorf("tones = %v, want %v", tones(got), tt.want)
			}
			for i := range got {
				if got[i].Spelling != tt.in[i].Spelling {
					t.Errorf("spelling %d changed: %q -> %q", i, tt.in[i].Spelling, got[i].Spelling)
				}
				if got[i].Tone < 1 || got[i].Tone > 5 {
					t.Errorf("tone %d out of range: %d", i, got[i].Tone)
				}
			}
		})
	}
}

func TestApplySandhiDoesNotMutateInput(t *testing.T) {
	in := makeSyllables(Syllable{"ni", 3}, Syllable{"hao", 3})
	ApplySandhi(in)
	if in[0].Tone != 3 {
		t.Errorf("input mutated: tone = %d, want 3", in[0].Tone)
	}
}

func TestApplySandhiIdempotent(t *testing.T) {
	inputs := [][]Syllable{
		makeSyllables(Syllable{"yi", 1}, Syllable{"ge", 4}),
		makeSyllables(Syllable{"yi", 1}, Syllable{"tian", 1}),
		makeSyllables(Syllable{"bu", 4}, Syllable{"shi", 4}),
		makeSyllables(Syllable{"ni", 3}, Syllable{"hao", 3}, Syllable{"ma", 3}),
		makeSyllables(Syllable{"yi", 1}, Syllable{"bu", 4}, Syllable{"shi", 4}, Syllable{"ni", 3}, Syllable{"hao", 3}),
		nil,
		makeSyllables(Syllable{"ma", 5}),
	}
	for _, in := range inputs {
		once := ApplySandhi(in)
		twice := ApplySandhi(once)
		if !equalTones(tones(once), tones(twice)) {
			t.Errorf("not idempotent for %v: once %v, twice %v", in, tones(once), tones(twice))
		}
	}
}

func TestApplySandhiEmpty(t *testing.T) {
	if got := ApplySandhi(nil); len(got) != 0 {
		t.Errorf("ApplySandhi(nil) = %v, want empty", got)
	}
}

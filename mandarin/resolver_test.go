package mandarin

import "testing"

func syllableStrs(syls []Syllable) []string {
	out := make([]string, len(syls))
	for i, s := range syls {
		out[i] = s.String()
	}
	return out
}

func equalStrs(a, b []string) bool {
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

func TestResolvePhrasePrecedence(t *testing.T) {
	r := NewResolver(nil)

	// 行走 as a verb must hit the phrase tier: 行 reads xing2 here, never the
	// hang2 reading it takes inside 银行.
	got, dropped := r.Resolve("行走", "v")
	if len(dropped) != 0 {
		t.Fatalf("dropped = %v, want none", dropped)
	}
	if want := []string{"xing2", "zou3"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("行走 = %v, want %v", syllableStrs(got), want)
	}

	got, _ = r.Resolve("银行", "n")
	if want := []string{"yin2", "hang2"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("银行 = %v, want %v", syllableStrs(got), want)
	}
}

func TestResolveByPOS(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		word string
		tag  string
		want []string
	}{
		// 行 alone: verb reads xing2, noun reads hang2.
		{"行", "v", []string{"xing2"}},
		{"行", "n", []string{"hang2"}},
		// Subtags match through the category prefix.
		{"行", "vn", []string{"xing2"}},
		{"长", "a", []string{"chang2"}},
		{"长", "v", []string{"zhang3"}},
		// No POS evidence falls back to the default tier.
		{"行", "", []string{"xing2"}},
		{"乐", "x", []string{"le4"}},
	}
	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.tag, func(t *testing.T) {
			got, _ := r.Resolve(tt.word, tt.tag)
			if !equalStrs(syllableStrs(got), tt.want) {
				t.Errorf("Resolve(%q, %q) = %v, want %v", tt.word, tt.tag, syllableStrs(got), tt.want)
			}
		})
	}
}

func TestResolveDefaultTier(t *testing.T) {
	r := NewResolver(nil)

	got, _ := r.Resolve("你", "r")
	if want := []string{"ni3"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("你 = %v, want %v", syllableStrs(got), want)
	}

	// 得 without POS evidence uses the frequent-table reading de2, not the
	// particle default de5.
	got, _ = r.Resolve("得", "x")
	if want := []string{"de2"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("得 = %v, want %v", syllableStrs(got), want)
	}
}

func TestResolveSkipsNonHan(t *testing.T) {
	r := NewResolver(nil)

	got, dropped := r.Resolve("abc你123", "x")
	if want := []string{"ni3"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("got %v, want %v", syllableStrs(got), want)
	}
	if len(dropped) != 0 {
		t.Errorf("dropped = %v, want none (non-Han is skipped, not dropped)", dropped)
	}
}

func TestResolveDropsUnknownHan(t *testing.T) {
	d := NewDicts(nil, nil, map[rune]string{'你': "ni3"})
	r := NewResolver(d)

	// 好 is absent from every tier of this trimmed dictionary: no syllable
	// is emitted for it and it appears in the dropped side channel.
	got, dropped := r.Resolve("你好", "x")
	if want := []string{"ni3"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("got %v, want %v", syllableStrs(got), want)
	}
	if len(dropped) != 1 || dropped[0] != '好' {
		t.Errorf("dropped = %q, want [好]", string(dropped))
	}
}

func TestResolveCustomDicts(t *testing.T) {
	d := NewDicts(
		map[string]string{"你好": "ni3 hao3"},
		[]POSEntry{{'好', "v", "hao4"}},
		map[rune]string{'好': "hao3"},
	)
	r := NewResolver(d)

	got, _ := r.Resolve("你好", "x")
	if want := []string{"ni3", "hao3"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("phrase tier = %v, want %v", syllableStrs(got), want)
	}

	got, _ = r.Resolve("好", "v")
	if want := []string{"hao4"}; !equalStrs(syllableStrs(got), want) {
		t.Errorf("pos tier = %v, want %v", syllableStrs(got), want)
	}
}

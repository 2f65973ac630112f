package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != "👨‍👩‍👧‍👦" {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("empty text should have no clusters")
	}
}

func TestBoundaries_StepWalksWholeString(t *testing.T) {
	text := "Hi📦🙏🏽"
	var clusters []string
	for state, rest, cluster := -1, text, ""; rest != ""; {
		cluster, rest, state = Boundaries{}.Step(rest, state)
		clusters = append(clusters, cluster)
	}
	want := []string{"H", "i", "📦", "🙏🏽"}
	if len(clusters) != len(want) {
		t.Fatalf("clusters=%q, want %q", clusters, want)
	}
	for i := range want {
		if clusters[i] != want[i] {
			t.Fatalf("cluster %d=%q, want %q", i, clusters[i], want[i])
		}
	}
}

func TestCells_Width(t *testing.T) {
	cells := NewCells(MeasureOptions{})
	cases := []struct {
		name    string
		cluster string
		want    int
	}{
		{name: "ascii", cluster: "a", want: 1},
		{name: "combining", cluster: "é", want: 1},
		{name: "emoji", cluster: "📦", want: 2},
		{name: "skin-tone", cluster: "🙏🏽", want: 2},
		{name: "cjk", cluster: "界", want: 2},
		{name: "zwj", cluster: "👨‍👩‍👧‍👦", want: 2},
		{name: "combining-only", cluster: "\u0301", want: 0},
		{name: "empty", cluster: "", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cells.Width(tc.cluster); got != tc.want {
				t.Fatalf("width(%q)=%d, want %d", tc.cluster, got, tc.want)
			}
		})
	}
}

func TestCells_EastAsianAmbiguous(t *testing.T) {
	narrow := NewCells(MeasureOptions{})
	wide := NewCells(MeasureOptions{EastAsianAmbiguousWide: true})
	if got := narrow.Width("±"); got != 1 {
		t.Fatalf("narrow width(±)=%d, want 1", got)
	}
	if got := wide.Width("±"); got != 2 {
		t.Fatalf("wide width(±)=%d, want 2", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
}

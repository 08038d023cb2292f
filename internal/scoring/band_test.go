package scoring

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Band
	}{
		{0, BandWeak},
		{39, BandWeak},
		{40, BandModerate},
		{69, BandModerate},
		{70, BandStrong},
		{100, BandStrong},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	if got := Classify(-5); got != BandWeak {
		t.Errorf("Classify(-5) = %s, want %s", got, BandWeak)
	}
	if got := Classify(150); got != BandStrong {
		t.Errorf("Classify(150) = %s, want %s", got, BandStrong)
	}
}

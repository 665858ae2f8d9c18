package gazetteer

import (
	"testing"

	"github.com/agnivade/levenshtein"
)

func TestDistanceUnbounded(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "tokyo", 5},
		{"tokyo", "", 5},
		{"tokyo", "tokyo", 0},
		{"eiffel towr", "eiffel tower", 1}, // one deletion
		{"londn", "london", 1},
		{"londno", "london", 2}, // transposition costs 2 (no Damerau)
		{"kitten", "sitting", 3},
		{"paris", "tokyo", 5},
		{"zürich", "zurich", 1}, // rune-wise, not byte-wise
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b, Unbounded); got != tt.want {
			t.Errorf("Distance(%q, %q, Unbounded) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceSymmetryAndBounds(t *testing.T) {
	words := []string{"", "a", "paris", "park city", "eiffel tower", "tokyo", "xyzzyqqq", "東京"}

	for _, a := range words {
		for _, b := range words {
			ab := Distance(a, b, Unbounded)
			ba := Distance(b, a, Unbounded)
			if ab != ba {
				t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			if maxLen := max(len([]rune(a)), len([]rune(b))); ab > maxLen {
				t.Errorf("Distance(%q, %q) = %d exceeds max length %d", a, b, ab, maxLen)
			}
		}
		if d := Distance(a, a, Unbounded); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", a, a, d)
		}
	}
}

// TestDistanceEarlyTermination checks the sentinel contract against an
// independent implementation: for every bound k, the bounded distance equals
// the true distance when that is <= k and k+1 otherwise.
func TestDistanceEarlyTermination(t *testing.T) {
	pairs := [][2]string{
		{"eiffel towr", "eiffel tower"},
		{"golden gate bridge", "golden gate"},
		{"xyzzyqqq", "paris"},
		{"new york", "newark"},
		{"", "stonehenge"},
		{"sydney opera house", "sydney"},
		{"tokyo", "kyoto"},
	}

	for _, p := range pairs {
		truth := levenshtein.ComputeDistance(p[0], p[1])
		for k := 0; k <= truth+2; k++ {
			got := Distance(p[0], p[1], k)
			want := truth
			if truth > k {
				want = k + 1
			}
			if got != want {
				t.Errorf("Distance(%q, %q, %d) = %d, want %d (true distance %d)",
					p[0], p[1], k, got, want, truth)
			}
		}
	}
}

func TestDistanceAgainstReference(t *testing.T) {
	words := []string{"paris", "park city", "pairs", "tokyo", "toyko", "eiffel tower", "a", ""}

	for _, a := range words {
		for _, b := range words {
			want := levenshtein.ComputeDistance(a, b)
			if got := Distance(a, b, Unbounded); got != want {
				t.Errorf("Distance(%q, %q, Unbounded) = %d, reference says %d", a, b, got, want)
			}
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	b.Run("Unbounded", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Distance("golden gate bridge", "golden gate bridgee", Unbounded)
		}
	})
	b.Run("Bounded3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Distance("golden gate bridge", "golden gate bridgee", 3)
		}
	})
	b.Run("Bounded3Miss", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Distance("golden gate bridge", "sydney opera house", 3)
		}
	})
}

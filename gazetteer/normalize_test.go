package gazetteer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"Paris", "paris"},
		{" New YORK ", "new york"},
		{"eiffel\ttower", "eiffel tower"},
		{"golden   gate    bridge", "golden gate bridge"},
		{"\n Sydney \r Opera\tHouse \n", "sydney opera house"},
		{"Zürich", "zürich"},
		{"already normal", "already normal"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Paris", " New   YORK ", "eiffel tower", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

package mood

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   \t\n", want: ""},
		{name: "lowercase", in: "happy", want: "Happy"},
		{name: "uppercase", in: "SAD", want: "Sad"},
		{name: "mixed case with padding", in: "  eNeRgEtIc  ", want: "Energetic"},
		{name: "already canonical", in: "Calm", want: "Calm"},
		{name: "multi word", in: "FEEL GOOD", want: "Feel good"},
		{name: "missing value marker", in: "nan", want: "Nan"},
		{name: "single letter", in: "x", want: "X"},
		{name: "non ascii first rune", in: "élan", want: "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", " ", "happy", "  SAD", "Calm ", "éNERGY", "123abc", "ß", "nan", " two  words "}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

package util

import "testing"

func TestParseConcentration(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "percent", input: "80 %", want: 8.0},
		{name: "grams per liter", input: "400 g/L", want: 4.0},
		{name: "grams per kilo", input: "250 g/kg", want: 2.5},
		{name: "no unit", input: "500", want: 5.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseConcentration(tc.input)
			if got == nil {
				t.Fatalf("concentration is nil")
			}
			if *got != tc.want {
				t.Fatalf("got %v want %v", *got, tc.want)
			}
		})
	}
}

func TestParseConcentrationMissing(t *testing.T) {
	for _, input := range []string{"", "abc", "g/L"} {
		if got := ParseConcentration(input); got != nil {
			t.Fatalf("ParseConcentration(%q) = %v, want nil", input, *got)
		}
	}
}

func TestConcentrationFragment(t *testing.T) {
	got := ConcentrationFragment("Cuivre (sous forme de sulfate de cuivre) 200 g/L")
	if got != "200 g/L" {
		t.Fatalf("got %q", got)
	}
	if ConcentrationFragment("Soufre") != "" {
		t.Fatal("expected empty fragment without parenthesis")
	}
	if ConcentrationFragment("Soufre (poudre") != "" {
		t.Fatal("expected empty fragment without closing marker")
	}
}

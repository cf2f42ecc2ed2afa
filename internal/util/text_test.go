package util

import "testing"

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Utilisable en Agriculture Biologique", "agriculture biologique") {
		t.Fatal("fold match failed")
	}
	if ContainsFold("Vigne", "pomme") {
		t.Fatal("unexpected match")
	}
}

func TestContainsAnyFold(t *testing.T) {
	needles := []string{"thrips", "esca"}
	if !ContainsAnyFold("Vigne*Esca", needles) {
		t.Fatal("expected denylist hit")
	}
	if ContainsAnyFold("Vigne*Mildiou", needles) {
		t.Fatal("unexpected denylist hit")
	}
}

func TestParseFloatLoose(t *testing.T) {
	if got := ParseFloatLoose("12,5"); got == nil || *got != 12.5 {
		t.Fatalf("decimal comma: %v", got)
	}
	if got := ParseFloatLoose("3"); got == nil || *got != 3 {
		t.Fatalf("integer: %v", got)
	}
	if got := ParseFloatLoose(""); got != nil {
		t.Fatal("empty should be nil")
	}
	if got := ParseFloatLoose("n/a"); got != nil {
		t.Fatal("non numeric should be nil")
	}
}

func TestRound(t *testing.T) {
	if Round(1.25, 1) != 1.3 {
		t.Fatalf("got %v", Round(1.25, 1))
	}
	if Round(0.0016, 3) != 0.002 {
		t.Fatalf("got %v", Round(0.0016, 3))
	}
}

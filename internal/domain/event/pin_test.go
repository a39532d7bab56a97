package event

import "testing"

func TestPINMatches(t *testing.T) {
	e := Event{ID: "evt-1", Name: "Spring Cup", PINHash: HashPIN("4321")}

	if !e.PINMatches("4321") {
		t.Fatalf("correct PIN should match")
	}
	if !e.PINMatches(" 4321 ") {
		t.Fatalf("surrounding whitespace should be ignored")
	}
	if e.PINMatches("1234") {
		t.Fatalf("wrong PIN must not match")
	}
	if e.PINMatches("") {
		t.Fatalf("empty PIN must not match")
	}
}

func TestHashPIN_NeverStoresPlaintext(t *testing.T) {
	if HashPIN("4321") == "4321" {
		t.Fatalf("hash must differ from the PIN")
	}
	if HashPIN("4321") != HashPIN("4321") {
		t.Fatalf("hash must be deterministic")
	}
}

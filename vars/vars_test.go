package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "> ", "lox> "); v != "> " {
		t.Fatalf("got %q", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %d", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %d", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "Yes", "y", "on", "1", " true "} {
		if !StrToBool(s) {
			t.Fatalf("got false for %q", s)
		}
	}
	for _, s := range []string{"false", "f", "no", "0", "", "maybe"} {
		if StrToBool(s) {
			t.Fatalf("got true for %q", s)
		}
	}
}

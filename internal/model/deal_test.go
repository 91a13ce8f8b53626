package model

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if CategoryAll.Valid() {
		t.Fatalf("the all sentinel must not be an assignable category")
	}
	if Category("gadgets").Valid() {
		t.Fatalf("arbitrary strings must not be valid categories")
	}
}

func TestValidASIN(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"B0863TXGM3", true},
		{"1234567890", true},
		{"b0863txgm3", false},
		{"B0863TXGM", false},
		{"B0863TXGM3X", false},
		{"", false},
		{"B0863-XGM3", false},
	}
	for _, c := range cases {
		if got := ValidASIN(c.in); got != c.want {
			t.Fatalf("ValidASIN(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSavingsClampsAtZero(t *testing.T) {
	d := DealRecord{OriginalPrice: 10, CurrentPrice: 25}
	if s := d.Savings(); s != 0 {
		t.Fatalf("expected clamped savings 0, got %v", s)
	}

	d = DealRecord{OriginalPrice: 25, CurrentPrice: 10}
	if s := d.Savings(); s != 15 {
		t.Fatalf("expected savings 15, got %v", s)
	}
}

package types

import "testing"

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Cell{0, 0}, "a8"},
		{Cell{7, 7}, "h1"},
		{Cell{6, 4}, "e2"},
		{Cell{-1, 3}, "(-1,3)"},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestParseCell(t *testing.T) {
	c, err := ParseCell("e2")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Cell{6, 4}) {
		t.Fatalf("expected (6,4), got %v", c)
	}
	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e22"} {
		if _, err := ParseCell(bad); err == nil {
			t.Errorf("ParseCell(%q) should fail", bad)
		}
	}
}

func TestOnBoard(t *testing.T) {
	if !(Cell{0, 7}).OnBoard() {
		t.Fatal("(0,7) should be on board")
	}
	for _, c := range []Cell{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if c.OnBoard() {
			t.Errorf("%v should be off board", c)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("dragon"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if k, _ := ParseKind(" Queen "); k != Queen {
		t.Fatalf("expected queen, got %v", k)
	}
}

func TestSideOpposite(t *testing.T) {
	if PlayerSide.Opposite() != OpponentSide || OpponentSide.Opposite() != PlayerSide {
		t.Fatal("Opposite should swap sides")
	}
}

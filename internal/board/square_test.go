package board

import "testing"

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq         Square
		file, rank int
	}{
		{A1, 0, 0},
		{H1, 7, 0},
		{A8, 0, 7},
		{H8, 7, 7},
		{E4, 4, 3},
	}
	for _, tc := range tests {
		if got := tc.sq.File(); got != tc.file {
			t.Errorf("%s.File() = %d, want %d", tc.sq, got, tc.file)
		}
		if got := tc.sq.Rank(); got != tc.rank {
			t.Errorf("%s.Rank() = %d, want %d", tc.sq, got, tc.rank)
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		s := sq.String()
		parsed, err := ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%q) failed: %v", s, err)
		}
		if parsed != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", s, parsed, sq)
		}
	}
}

func TestParseSquareRejectsInvalid(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "a", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) should have failed", s)
		}
	}
}

func TestSquareMirror(t *testing.T) {
	if got := A1.Mirror(); got != A8 {
		t.Errorf("A1.Mirror() = %s, want A8", got)
	}
	if got := H8.Mirror(); got != H1 {
		t.Errorf("H8.Mirror() = %s, want H1", got)
	}
	if got := E4.Mirror(); got != E5 {
		t.Errorf("E4.Mirror() = %s, want E5", got)
	}
}

func TestSquareRelativeRank(t *testing.T) {
	if got := A2.RelativeRank(White); got != 1 {
		t.Errorf("A2.RelativeRank(White) = %d, want 1", got)
	}
	if got := A7.RelativeRank(Black); got != 1 {
		t.Errorf("A7.RelativeRank(Black) = %d, want 1", got)
	}
}

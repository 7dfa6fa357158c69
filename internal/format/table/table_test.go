package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"t", "toggle theme"},
		{"pgdn", "page down"},
	}
	got := Format(rows, nil)
	want := []string{
		"t     toggle theme",
		"pgdn  page down",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignAndStyledCells(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mProjects\x1b[0m", "3"},
		{"Skills", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	if got[0] != "\x1b[1mProjects\x1b[0m   3" {
		t.Fatalf("expected styled cell measured by width, got %q", got[0])
	}
	if got[1] != "Skills    12" {
		t.Fatalf("expected right aligned count, got %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

package render

import (
	"strings"
	"testing"

	"lifegrid/internal/life"
)

func TestWriteText(t *testing.T) {
	w, err := life.Initialize(life.Config{Rows: 2, Cols: 2, CellSize: 1}, func(row, col int) bool {
		return row == 0 && col == 1
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	var sb strings.Builder
	if err := WriteText(&sb, w.View()); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "..##\n....\n"
	if sb.String() != want {
		t.Fatalf("rendered %q, want %q", sb.String(), want)
	}
}

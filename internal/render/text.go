package render

import (
	"bufio"
	"io"

	"lifegrid/internal/life"
)

const (
	textAlive = "##"
	textDead  = ".."
)

// WriteText renders a board view as rows of text, for headless tooling.
func WriteText(w io.Writer, view life.View) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < view.Rows(); r++ {
		for c := 0; c < view.Cols(); c++ {
			glyph := textDead
			if view.Alive(r*view.Cols() + c) {
				glyph = textAlive
			}
			if _, err := bw.WriteString(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

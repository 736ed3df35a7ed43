package server

import (
	"github.com/gorilla/websocket"

	"lifegrid/internal/life"
)

// Frame is one generation on the wire: board dimensions, the generation
// number the snapshot belongs to, and the ids of live cells.
type Frame struct {
	Generation int   `json:"generation"`
	Rows       int   `json:"rows"`
	Cols       int   `json:"cols"`
	Alive      []int `json:"alive"`
}

// frameSink is the render-sync collaborator for a websocket session. It
// observes each tick's pre-commit snapshot and writes it as a JSON frame.
type frameSink struct {
	conn       *websocket.Conn
	generation int
	err        error
}

// RenderSync serializes the viewed generation. Write errors are recorded
// rather than returned; the session loop surfaces them after the tick
// completes all its phases.
func (f *frameSink) RenderSync(view life.View) {
	frame := buildFrame(view, f.generation)
	f.generation++
	if f.err != nil {
		return
	}
	f.err = f.conn.WriteJSON(frame)
}

// buildFrame collects the live cell ids of a view.
func buildFrame(view life.View, generation int) Frame {
	frame := Frame{
		Generation: generation,
		Rows:       view.Rows(),
		Cols:       view.Cols(),
		Alive:      make([]int, 0, 64),
	}
	for id := 0; id < view.Len(); id++ {
		if view.Alive(id) {
			frame.Alive = append(frame.Alive, id)
		}
	}
	return frame
}

package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/kiln/internal/core/domain"
)

// Vertex is the progress record of one block in a run.
// Warnings and errors go to the vertex's stderr stream, everything else to stdout.
type Vertex struct {
	block  string
	vertex *progrock.VertexRecorder
	once   sync.Once
}

func newVertex(block string, v *progrock.VertexRecorder) *Vertex {
	return &Vertex{block: block, vertex: v}
}

// Block returns the name of the block the vertex reports on.
func (v *Vertex) Block() string {
	return v.block
}

// Stdout returns the vertex's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex's error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes a "[LEVEL] msg" line to the stream matching the level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level, msg)
}

// Complete finishes the vertex. Only the first call takes effect.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.vertex.Done(err)
	})
}

// Cached flags the vertex as served from a previous run.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Package progrock records builder phases on a progrock tape.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a new Recorder writing to an in-memory tape.
func New() *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Record starts a vertex named name. The digest is derived from the name, so names
// should be unique per run ("configure llama.cpp").
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Summary tallies the vertices on the tape. After Close the duration is fixed.
func (r *Recorder) Summary() domain.RunSummary {
	return domain.RunSummary{
		Total:     r.tape.TotalCount(),
		Completed: r.tape.CompletedCount(),
		Cached:    r.tape.CachedCount(),
		Failed:    r.tape.ErroredCount(),
		Duration:  r.tape.Duration(),
	}
}

// Close completes the root group and closes the tape.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}

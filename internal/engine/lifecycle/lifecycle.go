package lifecycle

import (
	"context"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

// Constructor creates a builder for a descriptor.
type Constructor func(desc *domain.Descriptor, deps Deps) Builder

// Kinds maps descriptor kinds to their builder constructors.
var Kinds = map[domain.Kind]Constructor{
	domain.KindGit:     NewGitBuilder,
	domain.KindArchive: NewArchiveBuilder,
}

// New creates the builder registered for desc.Kind.
func New(desc *domain.Descriptor, deps Deps) (Builder, error) {
	ctor, ok := Kinds[desc.Kind]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownBuilderKind, "cannot create builder")
		return nil, zerr.With(zerr.With(err, "kind", string(desc.Kind)), "dependency", desc.Name)
	}
	return ctor(desc, deps), nil
}

// StaticChecker is implemented by builders that can tell whether their static
// libraries are already installed.
type StaticChecker interface {
	LibsStaticExist() bool
}

// Runner drives builders through their phases, recording each phase.
type Runner struct {
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(telemetry ports.Telemetry, logger ports.Logger) *Runner {
	return &Runner{telemetry: telemetry, logger: logger}
}

// Process runs every phase of b in order and stops at the first failure.
func (r *Runner) Process(ctx context.Context, b Builder) error {
	for _, phase := range domain.Phases() {
		if err := r.RunPhase(ctx, b, phase); err != nil {
			return err
		}
	}
	return nil
}

// RunPhase runs a single phase of b.
func (r *Runner) RunPhase(ctx context.Context, b Builder, phase domain.Phase) error {
	name := b.Descriptor().Name
	r.logger.Debug(string(phase) + ": " + name)

	vctx, vertex := r.telemetry.Record(ctx, string(phase)+" "+name)
	err := phaseFunc(b, phase)(vctx)
	if err != nil {
		vertex.Log(domain.LogLevelError, err.Error())
	}
	vertex.Complete(err)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrPhaseFailed.Error())
		return zerr.With(zerr.With(err, "phase", string(phase)), "dependency", name)
	}
	return nil
}

func phaseFunc(b Builder, phase domain.Phase) func(context.Context) error {
	switch phase {
	case domain.PhasePreProcess:
		return b.PreProcess
	case domain.PhaseSetup:
		return b.Setup
	case domain.PhaseConfigure:
		return b.Configure
	case domain.PhaseBuild:
		return b.Build
	case domain.PhaseInstall:
		return b.Install
	case domain.PhaseClean:
		return b.Clean
	default:
		return b.PostProcess
	}
}

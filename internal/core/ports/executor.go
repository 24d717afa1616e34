// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/manage/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command synchronously. Each stream goes to the given writer,
	// or line by line to the logger when the writer is nil. A vertex carried by ctx
	// receives a copy of both streams.
	//
	// A nonzero exit returns *domain.CommandError.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}

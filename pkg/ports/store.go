package ports

import (
	"context"
	"errors"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// ErrResultNotFound is returned when a result ID cannot be found in the
// store.
var ErrResultNotFound = errors.New("result not found")

// ResultStore persists run results keyed by an external identifier
// (e.g. a submission ID handed in by a grading harness). The core is
// stateless; stores are purely a convenience for callers that want to
// fetch outcomes later.
type ResultStore interface {
	// Save persists the result under id.
	Save(ctx context.Context, id string, result *machine.Result) error

	// Load retrieves the result for id.
	// Returns ErrResultNotFound if no result exists.
	Load(ctx context.Context, id string) (*machine.Result, error)

	// List returns the known result IDs.
	List(ctx context.Context) ([]string, error)

	// Delete removes the result for id.
	Delete(ctx context.Context, id string) error
}

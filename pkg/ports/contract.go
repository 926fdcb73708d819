package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// RunResultStoreContract runs a suite of tests to verify that a
// ResultStore implementation adheres to the interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		result := &machine.Result{
			Output:   "1100",
			Accepted: true,
			Halt:     machine.HaltAccepted,
			Steps:    9,
			Trace: machine.Trace{
				{State: "right", Symbol: "1", Position: 0, Tape: "1011"},
			},
		}

		err := store.Save(ctx, runID, result)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, result.Output, loaded.Output)
		assert.Equal(t, result.Accepted, loaded.Accepted)
		assert.Equal(t, result.Halt, loaded.Halt)
		assert.Equal(t, result.Steps, loaded.Steps)
		require.Len(t, loaded.Trace, 1)
		assert.Equal(t, machine.State("right"), loaded.Trace[0].State)
		assert.Equal(t, "1", loaded.Trace[0].Symbol)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, ErrResultNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, &machine.Result{Halt: machine.HaltStuck})
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, ErrResultNotFound, "Load after Delete should return ErrResultNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, &machine.Result{Halt: machine.HaltAccepted})
		_ = store.Save(ctx, id2, &machine.Result{Halt: machine.HaltBudget})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

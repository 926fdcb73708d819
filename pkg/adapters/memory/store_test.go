package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/turingtoy/pkg/adapters/memory"
	"github.com/aretw0/turingtoy/pkg/machine"
	"github.com/aretw0/turingtoy/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, memory.New())
}

func TestMemoryStore_ListSorted(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		assert.NoError(t, store.Save(ctx, id, &machine.Result{Halt: machine.HaltAccepted}))
	}

	ids, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, ids)
}

func TestMemoryStore_DeleteAbsent(t *testing.T) {
	store := memory.New()
	assert.NoError(t, store.Delete(context.Background(), "never-saved"))
}

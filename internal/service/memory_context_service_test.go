package service

import (
	"context"
	"errors"
	"testing"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/identity"
	"swadesh-ai-be/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSkipsStorageForGuestAndAnonymous(t *testing.T) {
	assembler := NewMemoryContextAssembler(repotest.NewForbidden(t))

	for _, id := range []identity.Identity{identity.Guest(), identity.Anonymous()} {
		for _, explicit := range []string{"", "some context"} {
			got, err := assembler.Assemble(context.Background(), id, explicit)
			require.NoError(t, err)
			assert.Equal(t, explicit, got)
		}
	}
}

func TestAssembleWithNoMemoriesReturnsExplicit(t *testing.T) {
	store := repotest.NewStore()
	assembler := NewMemoryContextAssembler(store)

	got, err := assembler.Assemble(context.Background(), identity.Authenticated("u1"), "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = assembler.Assemble(context.Background(), identity.Authenticated("u1"), "trip to Goa")
	require.NoError(t, err)
	assert.Equal(t, "trip to Goa", got)
}

func TestAssembleRendersMemoriesInStorageOrder(t *testing.T) {
	store := repotest.NewStore()
	store.SeedMemory("u1", "Born in Delhi")
	store.SeedMemory("u2", "Someone else's fact")
	store.SeedMemory("u1", "Prefers Hindi replies")
	assembler := NewMemoryContextAssembler(store)

	got, err := assembler.Assemble(context.Background(), identity.Authenticated("u1"), "")
	require.NoError(t, err)
	assert.Equal(t, "User's memories for context:\n- Born in Delhi\n- Prefers Hindi replies", got)

	got, err = assembler.Assemble(context.Background(), identity.Authenticated("u1"), "planning a trip")
	require.NoError(t, err)
	assert.Equal(t, "User's memories for context:\n- Born in Delhi\n- Prefers Hindi replies\n\nplanning a trip", got)
}

// Pinned memories get no priority; they render where storage returns them.
func TestAssembleIgnoresPinning(t *testing.T) {
	store := repotest.NewStore()
	store.SeedMemory("u1", "first")
	pinned := store.SeedMemory("u1", "pinned later")
	pinned.IsPinned = true
	uow := store.NewUnitOfWork(context.Background())
	require.NoError(t, uow.MemoryRepository().Update(context.Background(), pinned))

	got, err := NewMemoryContextAssembler(store).Assemble(context.Background(), identity.Authenticated("u1"), "")
	require.NoError(t, err)
	assert.Equal(t, "User's memories for context:\n- first\n- pinned later", got)
}

func TestAssembleStorageFailure(t *testing.T) {
	store := repotest.NewStore()
	store.Err = errors.New("connection reset")

	got, err := NewMemoryContextAssembler(store).Assemble(context.Background(), identity.Authenticated("u1"), "explicit")
	assert.True(t, apperror.Is(err, apperror.KindStorageUnavailable))
	assert.Equal(t, "explicit", got)

	_, err = NewMemoryContextAssembler(nil).Assemble(context.Background(), identity.Authenticated("u1"), "")
	assert.True(t, apperror.Is(err, apperror.KindStorageUnavailable))
}

package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayscape/stayscape/internal/user"
)

func TestRegister_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()
	svc := user.NewService(repo)

	created, first, err := svc.Register(ctx, &user.User{Email: "a@b.com", Name: "A"})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, first)

	created, second, err := svc.Register(ctx, &user.User{Email: "a@b.com", Name: "someone else"})
	require.NoError(t, err)
	assert.False(t, created)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "A", second.Name, "repeat registration must not overwrite the record")

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "exactly one record persisted")
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()
	svc := user.NewService(repo)

	// Unknown email and known non-admin are indistinguishable.
	isAdmin, err := svc.IsAdmin(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, repo.Create(ctx, &user.User{Email: "plain@x.com"}))
	isAdmin, err = svc.IsAdmin(ctx, "plain@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, repo.Create(ctx, &user.User{Email: "boss@x.com", Role: user.RoleAdmin}))
	isAdmin, err = svc.IsAdmin(ctx, "boss@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestPromote(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()
	svc := user.NewService(repo)

	u := &user.User{Email: "soon@x.com"}
	require.NoError(t, repo.Create(ctx, u))

	n, err := svc.Promote(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	isAdmin, err := svc.IsAdmin(ctx, "soon@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestPromote_MissingID(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()
	svc := user.NewService(repo)

	u := &user.User{Email: "gone@x.com"}
	require.NoError(t, repo.Create(ctx, u))
	_, err := repo.Delete(ctx, u.ID)
	require.NoError(t, err)

	n, err := svc.Promote(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "missing id reports zero matched, not an error")
}

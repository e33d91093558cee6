package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

type stubUsers struct {
	user domain.User
	err  error
}

func (s stubUsers) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.user, s.err
}

func TestCurrent(t *testing.T) {
	want := domain.User{ID: "u1", Email: "ana@example.com", Role: domain.RoleHomeowner}
	got, err := New(stubUsers{user: want}).Current(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = New(stubUsers{err: ports.ErrNotFound}).Current(context.Background(), "u2")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = New(stubUsers{err: errors.New("conn reset")}).Current(context.Background(), "u3")
	assert.ErrorContains(t, err, "get profile u3")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDisplayName(t *testing.T) {
	name := "  Ana Lopez "
	blank := " "
	assert.Equal(t, "Ana Lopez", DisplayName(domain.User{FullName: &name, Email: "ana@example.com"}))
	assert.Equal(t, "ana", DisplayName(domain.User{FullName: &blank, Email: "ana@example.com"}))
	assert.Equal(t, "there", DisplayName(domain.User{}))
}

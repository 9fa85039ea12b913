package service

import (
	"context"
	"errors"
	"memareh/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_TwiceIsIdentity(t *testing.T) {
	f := newCommentsFixture(approved(1, 1, nil, 0, at(0)))
	ctx := context.Background()

	first, err := f.svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.LikeCount)

	second, err := f.svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.LikeCount)

	stored, _ := f.store.GetByID(ctx, 1)
	assert.Zero(t, stored.LikeCount)
	assert.Empty(t, f.store.likes)
	assert.Empty(t, f.lock.held)
}

func TestToggleLike_CountFollowsLikeRows(t *testing.T) {
	c := approved(1, 1, nil, 0, at(0))
	c.LikeCount = 5 // drifted
	f := newCommentsFixture(c)
	ctx := context.Background()

	res, err := f.svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, res.LikeCount)

	res, err = f.svc.ToggleLike(ctx, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, res.LikeCount)

	res, err = f.svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Equal(t, 1, res.LikeCount)
}

func TestToggleLike_InvalidatesThreadCache(t *testing.T) {
	f := newCommentsFixture(approved(1, 3, nil, 0, at(0)))

	_, err := f.svc.ToggleLike(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, []uint64{3}, f.cache.invalidated)
}

func TestToggleLike_GenuineFailurePropagates(t *testing.T) {
	f := newCommentsFixture(approved(1, 1, nil, 0, at(0)))
	f.store.insertErr = errors.New("deadlock detected")

	_, err := f.svc.ToggleLike(context.Background(), 1, 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
	assert.Empty(t, f.store.likes)
}

func TestToggleLike_Rejections(t *testing.T) {
	pending := approved(2, 1, nil, 0, at(0))
	pending.Status = models.CommentStatusPending
	f := newCommentsFixture(approved(1, 1, nil, 0, at(0)), pending)
	ctx := context.Background()

	_, err := f.svc.ToggleLike(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.svc.ToggleLike(ctx, 99, 7)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = f.svc.ToggleLike(ctx, 2, 7)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

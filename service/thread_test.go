package service

import (
	"memareh/models"
	"memareh/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(nodes []*types.CommentNode) []uint64 {
	out := make([]uint64, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func countNodes(roots []*types.CommentNode) int {
	total := 0
	for _, r := range roots {
		r.Walk(func(*types.CommentNode) { total++ })
	}
	return total
}

func TestBuildThread_PinnedRootFirst(t *testing.T) {
	c1 := approved(1, 1, nil, 0, at(1))
	c1.IsPinned = true
	c2 := approved(2, 1, nil, 0, at(2))
	c3 := approved(3, 1, ptr[uint64](1), 1, at(3))

	roots := BuildThread([]*models.Comment{c3, c2, c1}, true, 2)

	require.Len(t, roots, 2)
	assert.Equal(t, []uint64{1, 2}, ids(roots))
	assert.Equal(t, []uint64{3}, ids(roots[0].Replies))
	assert.Empty(t, roots[1].Replies)
}

func TestBuildThread_RootOrdering(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, nil, 0, at(1)),
		approved(2, 1, nil, 0, at(5)),
		approved(3, 1, nil, 0, at(3)),
		approved(4, 1, nil, 0, at(2)),
		approved(5, 1, nil, 0, at(4)),
	}
	comments[0].IsPinned = true
	comments[3].IsPinned = true

	roots := BuildThread(comments, true, 2)

	// pinned 4(t2), 1(t1), then 2(t5), 5(t4), 3(t3)
	assert.Equal(t, []uint64{4, 1, 2, 5, 3}, ids(roots))
}

func TestBuildThread_SameTimestampUsesID(t *testing.T) {
	comments := []*models.Comment{
		approved(7, 1, nil, 0, at(1)),
		approved(9, 1, nil, 0, at(1)),
		approved(11, 1, ptr[uint64](9), 1, at(2)),
		approved(10, 1, ptr[uint64](9), 1, at(2)),
	}

	roots := BuildThread(comments, true, 2)

	assert.Equal(t, []uint64{9, 7}, ids(roots))
	assert.Equal(t, []uint64{10, 11}, ids(roots[0].Replies))
}

func TestBuildThread_RepliesOldestFirst(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, nil, 0, at(0)),
		approved(2, 1, ptr[uint64](1), 1, at(9)),
		approved(3, 1, ptr[uint64](1), 1, at(4)),
		approved(4, 1, ptr[uint64](1), 1, at(6)),
	}

	roots := BuildThread(comments, true, 2)

	require.Len(t, roots, 1)
	assert.Equal(t, []uint64{3, 4, 2}, ids(roots[0].Replies))
}

func TestBuildThread_DropsOrphans(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, nil, 0, at(0)),
		approved(2, 1, ptr[uint64](99), 1, at(1)),
		approved(3, 1, ptr[uint64](2), 2, at(2)),
	}

	roots := BuildThread(comments, true, 2)

	assert.Equal(t, []uint64{1}, ids(roots))
	assert.Equal(t, 1, countNodes(roots))
}

func TestBuildThread_CycleIsTreatedAsOrphan(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, nil, 0, at(0)),
		approved(2, 1, ptr[uint64](3), 1, at(1)),
		approved(3, 1, ptr[uint64](2), 1, at(2)),
		approved(4, 1, ptr[uint64](2), 2, at(3)),
	}

	roots := BuildThread(comments, true, 2)

	assert.Equal(t, []uint64{1}, ids(roots))
	assert.Equal(t, 1, countNodes(roots))
}

func TestBuildThread_SelfParent(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, ptr[uint64](1), 0, at(0)),
		approved(2, 1, nil, 0, at(1)),
	}

	roots := BuildThread(comments, true, 2)

	assert.Equal(t, []uint64{2}, ids(roots))
}

func TestBuildThread_DuplicateKeepsFirst(t *testing.T) {
	first := approved(1, 1, nil, 0, at(0))
	first.Content = "first"
	second := approved(1, 1, nil, 0, at(5))
	second.Content = "second"

	roots := BuildThread([]*models.Comment{first, second}, true, 2)

	require.Len(t, roots, 1)
	assert.Equal(t, "first", roots[0].Content)
}

func TestBuildThread_EveryReplyExactlyOnce(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, nil, 0, at(0)),
		approved(2, 1, nil, 0, at(1)),
		approved(3, 1, ptr[uint64](1), 1, at(2)),
		approved(4, 1, ptr[uint64](3), 2, at(3)),
		approved(5, 1, ptr[uint64](2), 1, at(4)),
		approved(6, 1, ptr[uint64](1), 1, at(5)),
	}

	roots := BuildThread(comments, true, 2)

	seen := make(map[uint64]int)
	for _, root := range roots {
		assert.Nil(t, root.ParentID)
		root.Walk(func(n *types.CommentNode) {
			seen[n.ID]++
			for _, r := range n.Replies {
				require.NotNil(t, r.ParentID)
				assert.Equal(t, n.ID, *r.ParentID)
			}
		})
	}
	assert.Len(t, seen, len(comments))
	for id, n := range seen {
		assert.Equal(t, 1, n, "comment %d", id)
	}
}

func TestBuildThread_DepthAndCanReply(t *testing.T) {
	comments := []*models.Comment{
		approved(1, 1, nil, 0, at(0)),
		approved(2, 1, ptr[uint64](1), 1, at(1)),
		approved(3, 1, ptr[uint64](2), 2, at(2)),
	}

	roots := BuildThread(comments, true, 2)

	require.Len(t, roots, 1)
	depth1 := roots[0].Replies[0]
	depth2 := depth1.Replies[0]
	assert.Equal(t, 0, roots[0].Depth)
	assert.True(t, roots[0].CanReply)
	assert.Equal(t, 1, depth1.Depth)
	assert.True(t, depth1.CanReply)
	assert.Equal(t, 2, depth2.Depth)
	assert.False(t, depth2.CanReply)

	closed := BuildThread(comments, false, 2)
	closed[0].Walk(func(n *types.CommentNode) {
		assert.False(t, n.CanReply)
	})
}

func TestBuildThread_Empty(t *testing.T) {
	roots := BuildThread(nil, true, 2)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}

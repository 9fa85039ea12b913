package service

import (
	"memareh/models"
	"memareh/types"
	"sort"
)

// BuildThread 把平铺的评论组装成树.
//
// Roots are ordered pinned first, then newest first; replies oldest first.
// Duplicate ids keep their first occurrence. Comments whose parent is missing,
// or whose parent chain loops back to themselves, are dropped together with
// everything below them.
func BuildThread(comments []*models.Comment, allowComments bool, maxReplyDepth int) []*types.CommentNode {
	// 1. 建立索引
	byID := make(map[uint64]*models.Comment, len(comments))
	unique := make([]*models.Comment, 0, len(comments))
	for _, c := range comments {
		if c == nil {
			continue
		}
		if _, dup := byID[c.ID]; dup {
			continue
		}
		byID[c.ID] = c
		unique = append(unique, c)
	}

	nodes := make(map[uint64]*types.CommentNode, len(unique))
	for _, c := range unique {
		nodes[c.ID] = newCommentNode(c)
	}

	// 2. 挂到父节点
	roots := make([]*types.CommentNode, 0)
	for _, c := range unique {
		if c.ParentID == nil {
			roots = append(roots, nodes[c.ID])
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok || inCycle(c, byID, len(unique)) {
			continue
		}
		parent.Replies = append(parent.Replies, nodes[c.ID])
	}

	// 3. 排序并标注深度
	sortRoots(roots)
	for _, root := range roots {
		annotate(root, 0, allowComments, maxReplyDepth)
	}
	return roots
}

// inCycle walks c's ancestors, at most limit steps, looking for c itself.
func inCycle(c *models.Comment, byID map[uint64]*models.Comment, limit int) bool {
	cur := c
	for i := 0; i < limit; i++ {
		if cur.ParentID == nil {
			return false
		}
		if *cur.ParentID == c.ID {
			return true
		}
		next, ok := byID[*cur.ParentID]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}

func annotate(n *types.CommentNode, depth int, allowComments bool, maxReplyDepth int) {
	n.Depth = depth
	n.CanReply = allowComments && depth < maxReplyDepth
	sortReplies(n.Replies)
	for _, r := range n.Replies {
		annotate(r, depth+1, allowComments, maxReplyDepth)
	}
}

func sortRoots(roots []*types.CommentNode) {
	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

func sortReplies(replies []*types.CommentNode) {
	sort.Slice(replies, func(i, j int) bool {
		a, b := replies[i], replies[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func newCommentNode(c *models.Comment) *types.CommentNode {
	return &types.CommentNode{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		IsPinned:  c.IsPinned,
		CreatedAt: c.CreatedAt,
		Replies:   make([]*types.CommentNode, 0),
	}
}

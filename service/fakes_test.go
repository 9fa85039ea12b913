package service

import (
	"context"
	"encoding/json"
	"fmt"
	"memareh/config"
	"memareh/dao"
	"memareh/models"
	"memareh/types"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// memStore keeps comments and likes in memory. It satisfies CommentStore and LikeStore.
type memStore struct {
	mu       sync.Mutex
	comments map[uint64]*models.Comment
	likes    map[[2]uint64]bool

	calls     int
	createErr error
	insertErr error
	updateErr error

	// afterList runs once, after ListByArticle has read its rows
	afterList func()
}

func newMemStore(comments ...*models.Comment) *memStore {
	s := &memStore{
		comments: make(map[uint64]*models.Comment),
		likes:    make(map[[2]uint64]bool),
	}
	for _, c := range comments {
		s.comments[c.ID] = c
	}
	return s
}

func copyComment(c *models.Comment) *models.Comment {
	cp := *c
	return &cp
}

func (s *memStore) Create(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.createErr != nil {
		return s.createErr
	}
	s.comments[comment.ID] = copyComment(comment)
	return nil
}

func (s *memStore) GetByID(_ context.Context, commentID uint64) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	c, ok := s.comments[commentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyComment(c), nil
}

func (s *memStore) GetByIDs(_ context.Context, ids []uint64) (map[uint64]*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	result := make(map[uint64]*models.Comment)
	for _, id := range ids {
		if c, ok := s.comments[id]; ok {
			result[id] = copyComment(c)
		}
	}
	return result, nil
}

func (s *memStore) ListByArticle(_ context.Context, articleID uint64, status string) ([]*models.Comment, error) {
	result := s.listByArticle(articleID, status)
	if hook := s.afterList; hook != nil {
		s.afterList = nil
		hook()
	}
	return result, nil
}

func (s *memStore) listByArticle(articleID uint64, status string) []*models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	var result []*models.Comment
	for _, c := range s.comments {
		if c.ArticleID == articleID && c.Status == status {
			result = append(result, copyComment(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result
}

func (s *memStore) ListByStatus(_ context.Context, status string, offset, limit int) ([]*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	var result []*models.Comment
	for _, c := range s.comments {
		if c.Status == status {
			result = append(result, copyComment(c))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *memStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	result := map[string]int64{
		models.CommentStatusPending:  0,
		models.CommentStatusApproved: 0,
		models.CommentStatusRejected: 0,
	}
	for _, c := range s.comments {
		result[c.Status]++
	}
	return result, nil
}

func (s *memStore) Transition(_ context.Context, commentID uint64, from string, updates map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.updateErr != nil {
		return false, s.updateErr
	}
	c, ok := s.comments[commentID]
	if !ok || c.Status != from {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "status":
			c.Status = v.(string)
		case "rejection_reason":
			if v == nil {
				c.RejectionReason = nil
			} else {
				reason := v.(string)
				c.RejectionReason = &reason
			}
		case "moderated_by":
			by := v.(uint64)
			c.ModeratedBy = &by
		case "moderated_at":
			at := v.(time.Time)
			c.ModeratedAt = &at
		}
	}
	return true, nil
}

func (s *memStore) SetPinned(_ context.Context, commentID uint64, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if c, ok := s.comments[commentID]; ok {
		c.IsPinned = pinned
	}
	return nil
}

func (s *memStore) DeleteTree(_ context.Context, commentID uint64) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if _, ok := s.comments[commentID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ids := []uint64{commentID}
	for i := 0; i < len(ids); i++ {
		for _, c := range s.comments {
			if c.ParentID != nil && *c.ParentID == ids[i] {
				ids = append(ids, c.ID)
			}
		}
	}
	for _, id := range ids {
		delete(s.comments, id)
		for k := range s.likes {
			if k[0] == id {
				delete(s.likes, k)
			}
		}
	}
	return ids, nil
}

func (s *memStore) RecountLikes(_ context.Context, commentID uint64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	n := 0
	for k := range s.likes {
		if k[0] == commentID {
			n++
		}
	}
	if c, ok := s.comments[commentID]; ok {
		c.LikeCount = n
	}
	return n, nil
}

func (s *memStore) RecountAllLikes(ctx context.Context) (int64, error) {
	ids := make([]uint64, 0)
	s.mu.Lock()
	for id := range s.comments {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	for _, id := range ids {
		if _, err := s.RecountLikes(ctx, id); err != nil {
			return 0, err
		}
	}
	return int64(len(ids)), nil
}

func (s *memStore) Insert(_ context.Context, commentID, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.insertErr != nil {
		return s.insertErr
	}
	key := [2]uint64{commentID, userID}
	if s.likes[key] {
		return dao.ErrLikeExists
	}
	s.likes[key] = true
	return nil
}

func (s *memStore) Delete(_ context.Context, commentID, userID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	key := [2]uint64{commentID, userID}
	existed := s.likes[key]
	delete(s.likes, key)
	return existed, nil
}

func (s *memStore) BatchCheckExists(_ context.Context, commentIDs []uint64, userID uint64) (map[uint64]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	result := make(map[uint64]bool)
	for _, id := range commentIDs {
		if s.likes[[2]uint64{id, userID}] {
			result[id] = true
		}
	}
	return result, nil
}

func (s *memStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeArticles struct {
	mu       sync.Mutex
	articles map[uint64]*models.Article
	calls    int
	incrErr  error
}

func newFakeArticles(articles ...*models.Article) *fakeArticles {
	f := &fakeArticles{articles: make(map[uint64]*models.Article)}
	for _, a := range articles {
		f.articles[a.ID] = a
	}
	return f
}

func (f *fakeArticles) GetPublishedBySlug(_ context.Context, slug string) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	for _, a := range f.articles {
		if a.Slug == slug && a.IsPublished() {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArticles) GetByID(_ context.Context, id uint64) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	a, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticles) GetByIDs(_ context.Context, ids []uint64) (map[uint64]*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	result := make(map[uint64]*models.Article)
	for _, id := range ids {
		if a, ok := f.articles[id]; ok {
			cp := *a
			result[id] = &cp
		}
	}
	return result, nil
}

func (f *fakeArticles) IncrViewCount(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.incrErr != nil {
		return f.incrErr
	}
	if a, ok := f.articles[id]; ok {
		a.ViewCount++
	}
	return nil
}

type fakeRatings struct {
	ratings map[[2]uint64]int
}

func newFakeRatings() *fakeRatings {
	return &fakeRatings{ratings: make(map[[2]uint64]int)}
}

func (f *fakeRatings) Upsert(_ context.Context, articleID, userID uint64, rating int) error {
	f.ratings[[2]uint64{articleID, userID}] = rating
	return nil
}

func (f *fakeRatings) Distribution(_ context.Context, articleID uint64) (map[int]int64, error) {
	result := make(map[int]int64)
	for k, r := range f.ratings {
		if k[0] == articleID {
			result[r]++
		}
	}
	return result, nil
}

func (f *fakeRatings) GetUserRating(_ context.Context, articleID, userID uint64) (int, error) {
	return f.ratings[[2]uint64{articleID, userID}], nil
}

// memCache round-trips through JSON and versions entries like the redis implementation does.
type memCache struct {
	mu          sync.Mutex
	data        map[uint64][]byte
	versions    map[uint64]int64
	sets        int
	invalidated []uint64
}

func newMemCache() *memCache {
	return &memCache{data: make(map[uint64][]byte), versions: make(map[uint64]int64)}
}

func (m *memCache) Version(_ context.Context, articleID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[articleID], nil
}

func (m *memCache) Get(_ context.Context, articleID uint64) ([]*types.CommentNode, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[articleID]
	if !ok {
		return nil, false, nil
	}
	var nodes []*types.CommentNode
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return nil, false, err
	}
	return nodes, true, nil
}

func (m *memCache) Set(_ context.Context, articleID uint64, version int64, nodes []*types.CommentNode) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.versions[articleID] != version {
		return false, nil
	}
	raw, err := json.Marshal(nodes)
	if err != nil {
		return false, err
	}
	m.data[articleID] = raw
	m.sets++
	return true, nil
}

func (m *memCache) Invalidate(_ context.Context, articleID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, articleID)
	m.versions[articleID]++
	m.invalidated = append(m.invalidated, articleID)
	return nil
}

type memLock struct {
	mu     sync.Mutex
	held   map[string]string
	tokens int
}

func newMemLock() *memLock {
	return &memLock{held: make(map[string]string)}
}

func (l *memLock) Acquire(_ context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return "", false, nil
	}
	l.tokens++
	token := fmt.Sprintf("token-%d", l.tokens)
	l.held[key] = token
	return token, true, nil
}

func (l *memLock) Release(_ context.Context, key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == token {
		delete(l.held, key)
	}
}

type published struct {
	topic string
	body  []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, published{topic: topic, body: body})
	return p.err
}

func testCommentConf() *config.Comment {
	return &config.Comment{
		MaxContentLength: 1000,
		MaxReplyDepth:    2,
		ThreadCacheTTL:   600,
		SubmitLockTTL:    5,
	}
}

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return baseTime.Add(time.Duration(minutes) * time.Minute)
}

func ptr[T any](v T) *T {
	return &v
}

func publishedArticle(id uint64, slug string) *models.Article {
	return &models.Article{
		ID:            id,
		Slug:          slug,
		Title:         "عنوان " + slug,
		Status:        models.ArticleStatusPublished,
		AllowComments: true,
	}
}

func approved(id, articleID uint64, parent *uint64, depth int, created time.Time) *models.Comment {
	return &models.Comment{
		ID:        id,
		ArticleID: articleID,
		UserID:    100 + id,
		ParentID:  parent,
		Depth:     depth,
		Content:   "comment",
		Status:    models.CommentStatusApproved,
		CreatedAt: created,
	}
}

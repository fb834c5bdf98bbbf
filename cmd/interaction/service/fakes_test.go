package service

import (
	"context"
	"fmt"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/mq"
	"gorm.io/gorm"
)

type memStore struct {
	videos   map[string]string // id -> owner
	comments map[string]*model.Comment
	tweets   map[string]string
	likes    []*model.Like
	seq      int
	dupLike  bool
}

func newMemStore() *memStore {
	return &memStore{
		videos:   map[string]string{},
		comments: map[string]*model.Comment{},
		tweets:   map[string]string{},
	}
}

func (m *memStore) nextId(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.ID = m.nextId("c")
	comment.CreatedAt = time.Unix(int64(m.seq), 0)
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *memStore) GetCommentById(ctx context.Context, commentId string) (*model.Comment, error) {
	c, ok := m.comments[commentId]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error) {
	all := make([]*model.Comment, 0)
	for i := m.seq; i > 0; i-- {
		if c, ok := m.comments[fmt.Sprintf("c%d", i)]; ok && c.VideoId == videoId {
			all = append(all, c)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return []*model.Comment{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *memStore) UpdateCommentContent(ctx context.Context, comment *model.Comment, content string) error {
	m.comments[comment.ID].Content = content
	return nil
}

func (m *memStore) DeleteComment(ctx context.Context, commentId string) error {
	delete(m.comments, commentId)
	return nil
}

func (m *memStore) VideoExists(ctx context.Context, videoId string) (bool, error) {
	_, ok := m.videos[videoId]
	return ok, nil
}

func (m *memStore) GetLike(ctx context.Context, userId, kind, targetId string) (*model.Like, error) {
	for _, l := range m.likes {
		k, id := l.Target()
		if l.LikedBy == userId && k == kind && id == targetId {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateLike(ctx context.Context, like *model.Like) error {
	if m.dupLike {
		m.dupLike = false
		return gorm.ErrDuplicatedKey
	}
	like.ID = m.nextId("l")
	m.likes = append(m.likes, like)
	return nil
}

func (m *memStore) DeleteLike(ctx context.Context, likeId string) error {
	for i, l := range m.likes {
		if l.ID == likeId {
			m.likes = append(m.likes[:i], m.likes[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) ListLikedVideos(ctx context.Context, userId string) ([]*model.Like, error) {
	res := make([]*model.Like, 0)
	for _, l := range m.likes {
		if l.LikedBy == userId && l.VideoId != nil {
			res = append(res, l)
		}
	}
	return res, nil
}

func (m *memStore) TargetOwner(ctx context.Context, kind, targetId string) (string, error) {
	switch kind {
	case "video":
		return m.videos[targetId], nil
	case "comment":
		if c, ok := m.comments[targetId]; ok {
			return c.OwnerId, nil
		}
	case "tweet":
		return m.tweets[targetId], nil
	}
	return "", nil
}

type recordingProducer struct {
	events []*mq.ChannelEvent
}

func (p *recordingProducer) PublishChannelEvent(_ context.Context, e *mq.ChannelEvent) error {
	p.events = append(p.events, e)
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/oss"
)

type memVideoStore struct {
	videos    map[string]*model.Video
	seq       int
	failWrite bool
}

func newMemVideoStore() *memVideoStore {
	return &memVideoStore{videos: map[string]*model.Video{}}
}

func (m *memVideoStore) add(owner string, views int64, published bool) *model.Video {
	m.seq++
	v := &model.Video{
		ID:          fmt.Sprintf("v%d", m.seq),
		Title:       fmt.Sprintf("video %d", m.seq),
		Description: "desc",
		Views:       views,
		IsPublished: published,
		OwnerId:     owner,
		CreatedAt:   time.Unix(int64(m.seq), 0),
	}
	m.videos[v.ID] = v
	return v
}

func (m *memVideoStore) CreateVideo(ctx context.Context, video *model.Video) error {
	if m.failWrite {
		return errors.New("insert failed")
	}
	m.seq++
	video.ID = fmt.Sprintf("v%d", m.seq)
	cp := *video
	m.videos[video.ID] = &cp
	return nil
}

func (m *memVideoStore) GetVideoById(ctx context.Context, videoId string) (*model.Video, error) {
	v, ok := m.videos[videoId]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *memVideoStore) ListVideos(ctx context.Context, q *db.VideoQuery) ([]*model.Video, int64, error) {
	matched := make([]*model.Video, 0)
	for _, v := range m.videos {
		if q.OwnerId != "" && v.OwnerId != q.OwnerId {
			continue
		}
		if q.PublishedOnly && !v.IsPublished {
			continue
		}
		kw := strings.ToLower(q.Keyword)
		if kw != "" && !strings.Contains(strings.ToLower(v.Title), kw) && !strings.Contains(strings.ToLower(v.Description), kw) {
			continue
		}
		matched = append(matched, v)
	}
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch q.SortColumn {
		case "views":
			less = matched[i].Views < matched[j].Views
		case "title":
			less = matched[i].Title < matched[j].Title
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if q.Desc {
			return !less
		}
		return less
	})
	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []*model.Video{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], total, nil
}

func (m *memVideoStore) ListVideosByOwner(ctx context.Context, ownerId string) ([]*model.Video, error) {
	res := make([]*model.Video, 0)
	for _, v := range m.videos {
		if v.OwnerId == ownerId {
			res = append(res, v)
		}
	}
	return res, nil
}

func (m *memVideoStore) UpdateVideo(ctx context.Context, video *model.Video, fields map[string]interface{}) error {
	if m.failWrite {
		return errors.New("update failed")
	}
	v := m.videos[video.ID]
	for k, val := range fields {
		switch k {
		case "title":
			v.Title = val.(string)
		case "description":
			v.Description = val.(string)
		case "thumbnail":
			v.Thumbnail = val.(string)
		case "thumbnail_cloud_id":
			v.ThumbnailCloudId = val.(string)
		case "is_published":
			v.IsPublished = val.(bool)
		}
	}
	return nil
}

func (m *memVideoStore) IncrementViews(ctx context.Context, videoId string) error {
	m.videos[videoId].Views++
	return nil
}

func (m *memVideoStore) DeleteVideo(ctx context.Context, videoId string) error {
	delete(m.videos, videoId)
	return nil
}

type memPlaylistStore struct {
	playlists map[string]*model.Playlist
	seq       int
}

func newMemPlaylistStore() *memPlaylistStore {
	return &memPlaylistStore{playlists: map[string]*model.Playlist{}}
}

func (m *memPlaylistStore) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	m.seq++
	playlist.ID = fmt.Sprintf("p%d", m.seq)
	cp := *playlist
	cp.Videos = append([]string{}, playlist.Videos...)
	m.playlists[playlist.ID] = &cp
	return nil
}

func (m *memPlaylistStore) GetPlaylistById(ctx context.Context, playlistId string) (*model.Playlist, error) {
	p, ok := m.playlists[playlistId]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Videos = append([]string{}, p.Videos...)
	return &cp, nil
}

func (m *memPlaylistStore) ListPlaylistsByOwner(ctx context.Context, ownerId string) ([]*model.Playlist, error) {
	res := make([]*model.Playlist, 0)
	for _, p := range m.playlists {
		if p.OwnerId == ownerId {
			res = append(res, p)
		}
	}
	return res, nil
}

func (m *memPlaylistStore) AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	p := m.playlists[playlistId]
	for _, v := range p.Videos {
		if v == videoId {
			return nil
		}
	}
	p.Videos = append(p.Videos, videoId)
	return nil
}

func (m *memPlaylistStore) RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	p := m.playlists[playlistId]
	kept := make([]string, 0, len(p.Videos))
	for _, v := range p.Videos {
		if v != videoId {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	return nil
}

func (m *memPlaylistStore) UpdatePlaylist(ctx context.Context, playlist *model.Playlist, name, description string) error {
	p := m.playlists[playlist.ID]
	p.Name = name
	p.Description = description
	return nil
}

func (m *memPlaylistStore) DeletePlaylist(ctx context.Context, playlistId string) error {
	delete(m.playlists, playlistId)
	return nil
}

type fakeUploader struct {
	uploaded  []string
	destroyed []string
	// failOn makes uploads of this resource type fail
	failOn string
}

func (u *fakeUploader) Upload(ctx context.Context, localPath string, opts oss.UploadOptions) (*oss.UploadResult, error) {
	if opts.ResourceType == u.failOn {
		return nil, errno.UploadErr
	}
	id := fmt.Sprintf("%s/%s/%d", opts.ResourceType, opts.Folder, len(u.uploaded)+1)
	u.uploaded = append(u.uploaded, id)
	res := &oss.UploadResult{SecureUrl: "http://cdn/" + id, PublicId: id}
	if opts.ResourceType == oss.ResourceVideo {
		res.Duration = 12.5
	}
	return res, nil
}

func (u *fakeUploader) Destroy(ctx context.Context, publicId string) error {
	u.destroyed = append(u.destroyed, publicId)
	return nil
}

type fakeCounters struct {
	subscribers map[string]int64
	likes       map[string]int64 // video id -> likes
	calls       int
}

func (f *fakeCounters) CountSubscribers(ctx context.Context, channelId string) (int64, error) {
	f.calls++
	return f.subscribers[channelId], nil
}

func (f *fakeCounters) CountVideoLikes(ctx context.Context, videoIds []string) (int64, error) {
	var total int64
	for _, id := range videoIds {
		total += f.likes[id]
	}
	return total, nil
}

type memStatsCache struct {
	entries map[string]*model.ChannelStats
}

func (c *memStatsCache) Get(ctx context.Context, channelId string) (*model.ChannelStats, error) {
	return c.entries[channelId], nil
}

func (c *memStatsCache) Set(ctx context.Context, channelId string, stats *model.ChannelStats) error {
	c.entries[channelId] = stats
	return nil
}

func (c *memStatsCache) Invalidate(ctx context.Context, channelId string) error {
	delete(c.entries, channelId)
	return nil
}

type recordingProducer struct {
	events []*mq.ChannelEvent
}

func (p *recordingProducer) PublishChannelEvent(_ context.Context, e *mq.ChannelEvent) error {
	p.events = append(p.events, e)
	return nil
}

func code(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

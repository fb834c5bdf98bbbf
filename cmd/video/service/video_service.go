package service

import (
	"context"
	"path/filepath"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoById(ctx context.Context, videoId string) (*model.Video, error)
	ListVideos(ctx context.Context, q *db.VideoQuery) ([]*model.Video, int64, error)
	ListVideosByOwner(ctx context.Context, ownerId string) ([]*model.Video, error)
	UpdateVideo(ctx context.Context, video *model.Video, fields map[string]interface{}) error
	IncrementViews(ctx context.Context, videoId string) error
	DeleteVideo(ctx context.Context, videoId string) error
}

// Thumbnailer extracts a still from videoPath into outputDir and returns its path.
type Thumbnailer func(videoPath, outputDir string) (string, error)

// sortBy values accepted by the video list, mapped to columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"duration":  "duration",
	"views":     "views",
}

type ListVideosRequest struct {
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type VideoList struct {
	Videos      []*model.Video `json:"videos"`
	Page        int64          `json:"page"`
	Limit       int64          `json:"limit"`
	TotalVideos int64          `json:"totalVideos"`
	TotalPages  int64          `json:"totalPages"`
}

// PublishVideoRequest carries the form fields and the local paths of the uploaded files.
type PublishVideoRequest struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

type UpdateVideoRequest struct {
	Title         string
	Description   string
	ThumbnailPath string
}

type VideoService struct {
	store       VideoStore
	uploader    oss.Uploader
	thumbnailer Thumbnailer
	producer    mq.MessageProducer
}

func NewVideoService(store VideoStore, uploader oss.Uploader, producer mq.MessageProducer) *VideoService {
	return &VideoService{
		store:       store,
		uploader:    uploader,
		thumbnailer: utils.GetVideoThumbnail,
		producer:    producer,
	}
}

func (s *VideoService) WithThumbnailer(t Thumbnailer) *VideoService {
	s.thumbnailer = t
	return s
}

func (s *VideoService) GetAllVideos(ctx context.Context, actorId string, req *ListVideosRequest, page utils.Pagination) (*VideoList, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = constants.DefaultSortBy
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, errno.RequestErr.WithMessage("Invalid sortBy field: " + sortBy)
	}
	sortType := strings.ToLower(req.SortType)
	if sortType == "" {
		sortType = constants.DefaultSortType
	}
	if sortType != "asc" && sortType != "desc" {
		return nil, errno.RequestErr.WithMessage("sortType must be asc or desc")
	}

	q := &db.VideoQuery{
		Keyword:       strings.TrimSpace(req.Query),
		OwnerId:       req.UserId,
		PublishedOnly: req.UserId == "" || req.UserId != actorId,
		SortColumn:    column,
		Desc:          sortType == "desc",
		Offset:        page.Offset(),
		Limit:         int(page.Limit),
	}
	videos, total, err := s.store.ListVideos(ctx, q)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideos failed")
	}
	return &VideoList{
		Videos:      videos,
		Page:        page.Page,
		Limit:       page.Limit,
		TotalVideos: total,
		TotalPages:  page.TotalPages(total),
	}, nil
}

// PublishVideo uploads the video and its thumbnail and stores the record. Assets already
// uploaded are destroyed again when a later step fails.
func (s *VideoService) PublishVideo(ctx context.Context, actorId string, req *PublishVideoRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, errno.RequestErr.WithMessage("Title and description are required")
	}
	if req.VideoPath == "" {
		return nil, errno.RequestErr.WithMessage("Video file is required")
	}

	uploadedVideo, err := s.uploader.Upload(ctx, req.VideoPath, oss.UploadOptions{
		ResourceType: oss.ResourceVideo,
		Folder:       constants.VideoFolder,
	})
	if err != nil || uploadedVideo == nil || uploadedVideo.SecureUrl == "" {
		hlog.CtxErrorf(ctx, "upload video %s failed: %v", req.VideoPath, err)
		return nil, errno.UploadErr.WithMessage("Video upload failed")
	}

	thumbnailPath := req.ThumbnailPath
	if thumbnailPath == "" {
		thumbnailPath, err = s.thumbnailer(req.VideoPath, filepath.Dir(req.VideoPath))
		if err != nil {
			hlog.CtxErrorf(ctx, "generate thumbnail for %s failed: %v", req.VideoPath, err)
			s.destroy(ctx, uploadedVideo.PublicId)
			return nil, errno.UploadErr.WithMessage("Thumbnail upload failed")
		}
	}
	uploadedThumbnail, err := s.uploader.Upload(ctx, thumbnailPath, oss.UploadOptions{
		ResourceType: oss.ResourceImage,
		Folder:       constants.ThumbnailFolder,
	})
	if err != nil || uploadedThumbnail == nil || uploadedThumbnail.SecureUrl == "" {
		hlog.CtxErrorf(ctx, "upload thumbnail %s failed: %v", thumbnailPath, err)
		s.destroy(ctx, uploadedVideo.PublicId)
		return nil, errno.UploadErr.WithMessage("Thumbnail upload failed")
	}

	video := &model.Video{
		Title:            title,
		Description:      description,
		VideoUrl:         uploadedVideo.SecureUrl,
		CloudId:          uploadedVideo.PublicId,
		Duration:         uploadedVideo.Duration,
		Thumbnail:        uploadedThumbnail.SecureUrl,
		ThumbnailCloudId: uploadedThumbnail.PublicId,
		IsPublished:      true,
		OwnerId:          actorId,
	}
	if err := s.store.CreateVideo(ctx, video); err != nil {
		s.destroy(ctx, uploadedVideo.PublicId, uploadedThumbnail.PublicId)
		return nil, errors.WithMessage(err, "dao.CreateVideo failed")
	}

	mq.Publish(ctx, s.producer, mq.NewChannelEvent(constants.EventVideoPublish, actorId, video.ID, actorId, constants.ActionAdded))
	return video, nil
}

// GetVideoById counts a view. Unpublished videos are only visible to their owner.
func (s *VideoService) GetVideoById(ctx context.Context, actorId, videoId string) (*model.Video, error) {
	if videoId == "" {
		return nil, errno.RequestErr.WithMessage("Video ID is required")
	}
	video, err := s.store.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoById failed")
	}
	if video == nil || (!video.IsPublished && video.OwnerId != actorId) {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	if err := s.store.IncrementViews(ctx, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.IncrementViews failed")
	}
	video.Views++
	mq.Publish(ctx, s.producer, mq.NewChannelEvent(constants.EventVideoView, actorId, videoId, video.OwnerId, constants.ActionAdded))
	return video, nil
}

// UpdateVideo replaces title, description and thumbnail. The old thumbnail asset is destroyed afterwards.
func (s *VideoService) UpdateVideo(ctx context.Context, actorId, videoId string, req *UpdateVideoRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if videoId == "" {
		return nil, errno.RequestErr.WithMessage("Video ID is required")
	}
	if title == "" {
		return nil, errno.RequestErr.WithMessage("title is required")
	}
	if description == "" {
		return nil, errno.RequestErr.WithMessage("description is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("thumbnail file is missing")
	}

	video, err := s.ownedVideo(ctx, actorId, videoId)
	if err != nil {
		return nil, err
	}

	thumbnail, err := s.uploader.Upload(ctx, req.ThumbnailPath, oss.UploadOptions{
		ResourceType: oss.ResourceImage,
		Folder:       constants.ThumbnailFolder,
	})
	if err != nil || thumbnail == nil || thumbnail.SecureUrl == "" {
		hlog.CtxErrorf(ctx, "upload thumbnail %s failed: %v", req.ThumbnailPath, err)
		return nil, errno.UploadErr.WithMessage("thumbnail upload failed")
	}

	oldThumbnail := video.ThumbnailCloudId
	err = s.store.UpdateVideo(ctx, video, map[string]interface{}{
		"title":              title,
		"description":        description,
		"thumbnail":          thumbnail.SecureUrl,
		"thumbnail_cloud_id": thumbnail.PublicId,
	})
	if err != nil {
		s.destroy(ctx, thumbnail.PublicId)
		return nil, errors.WithMessage(err, "dao.UpdateVideo failed")
	}
	video.Title = title
	video.Description = description
	video.Thumbnail = thumbnail.SecureUrl
	video.ThumbnailCloudId = thumbnail.PublicId

	s.destroy(ctx, oldThumbnail)
	return video, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, actorId, videoId string) (*model.Video, error) {
	if videoId == "" {
		return nil, errno.RequestErr.WithMessage("Video ID is required")
	}
	video, err := s.ownedVideo(ctx, actorId, videoId)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteVideo(ctx, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.DeleteVideo failed")
	}
	s.destroy(ctx, video.CloudId, video.ThumbnailCloudId)

	mq.Publish(ctx, s.producer, mq.NewChannelEvent(constants.EventVideoDelete, actorId, videoId, video.OwnerId, constants.ActionRemoved))
	return video, nil
}

func (s *VideoService) TogglePublishStatus(ctx context.Context, actorId, videoId string) (*model.Video, error) {
	if videoId == "" {
		return nil, errno.RequestErr.WithMessage("Video ID is required")
	}
	video, err := s.ownedVideo(ctx, actorId, videoId)
	if err != nil {
		return nil, err
	}
	published := !video.IsPublished
	if err := s.store.UpdateVideo(ctx, video, map[string]interface{}{"is_published": published}); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateVideo failed")
	}
	video.IsPublished = published

	action := constants.ActionRemoved
	if published {
		action = constants.ActionAdded
	}
	mq.Publish(ctx, s.producer, mq.NewChannelEvent(constants.EventVideoTogglePublish, actorId, videoId, video.OwnerId, action))
	return video, nil
}

func (s *VideoService) ownedVideo(ctx context.Context, actorId, videoId string) (*model.Video, error) {
	video, err := s.store.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoById failed")
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	if video.OwnerId != actorId {
		return nil, errno.ForbiddenErr
	}
	return video, nil
}

// destroy removes remote assets best-effort.
func (s *VideoService) destroy(ctx context.Context, publicIds ...string) {
	for _, id := range publicIds {
		if id == "" {
			continue
		}
		if err := s.uploader.Destroy(ctx, id); err != nil {
			hlog.CtxWarnf(ctx, "destroy asset %s failed: %v", id, err)
		}
	}
}

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
)

const MaxCommentLength = 500

type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentById(ctx context.Context, commentId string) (*model.Comment, error)
	ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error)
	UpdateCommentContent(ctx context.Context, comment *model.Comment, content string) error
	DeleteComment(ctx context.Context, commentId string) error
	VideoExists(ctx context.Context, videoId string) (bool, error)
}

type AddCommentRequest struct {
	Content string `json:"content" form:"content"`
}

type UpdateCommentRequest struct {
	CommentId string `json:"commentId" form:"commentId"`
	Content   string `json:"content" form:"content"`
}

type CommentList struct {
	Comments      []*model.Comment `json:"comments"`
	Page          int64            `json:"page"`
	Limit         int64            `json:"limit"`
	TotalComments int64            `json:"totalComments"`
	TotalPages    int64            `json:"totalPages"`
}

type CommentService struct {
	store CommentStore
}

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{store: store}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.RequestErr.WithMessage("content is missing")
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return "", errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return content, nil
}

func (s *CommentService) GetVideoComments(ctx context.Context, videoId string, page utils.Pagination) (*CommentList, error) {
	if videoId == "" {
		return nil, errno.RequestErr.WithMessage("Video ID is required")
	}
	comments, total, err := s.store.ListVideoComments(ctx, videoId, page.Offset(), int(page.Limit))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideoComments failed")
	}
	return &CommentList{
		Comments:      comments,
		Page:          page.Page,
		Limit:         page.Limit,
		TotalComments: total,
		TotalPages:    page.TotalPages(total),
	}, nil
}

func (s *CommentService) AddComment(ctx context.Context, actorId, videoId string, req *AddCommentRequest) (*model.Comment, error) {
	if videoId == "" || actorId == "" {
		return nil, errno.RequestErr.WithMessage("Video or user does not exist")
	}
	content, err := validateCommentContent(req.Content)
	if err != nil {
		return nil, err
	}
	exists, err := s.store.VideoExists(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.VideoExists failed")
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	comment := &model.Comment{Content: content, VideoId: videoId, OwnerId: actorId}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, actorId string, req *UpdateCommentRequest) (*model.Comment, error) {
	if req.CommentId == "" {
		return nil, errno.RequestErr.WithMessage("Comment ID is required")
	}
	content, err := validateCommentContent(req.Content)
	if err != nil {
		return nil, err
	}
	comment, err := s.ownedComment(ctx, actorId, req.CommentId)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateCommentContent(ctx, comment, content); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCommentContent failed")
	}
	comment.Content = content
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actorId, commentId string) (*model.Comment, error) {
	if commentId == "" {
		return nil, errno.RequestErr.WithMessage("Comment ID is required")
	}
	comment, err := s.ownedComment(ctx, actorId, commentId)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteComment(ctx, commentId); err != nil {
		return nil, errors.WithMessage(err, "dao.DeleteComment failed")
	}
	return comment, nil
}

func (s *CommentService) ownedComment(ctx context.Context, actorId, commentId string) (*model.Comment, error) {
	comment, err := s.store.GetCommentById(ctx, commentId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentById failed")
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("Comment not found")
	}
	if comment.OwnerId != actorId {
		return nil, errno.ForbiddenErr
	}
	return comment, nil
}

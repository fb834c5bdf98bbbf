package service

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, userId string) (*model.User, error)
	GetUserByLogin(ctx context.Context, username, email string) (*model.User, error)
}

type RegisterRequest struct {
	Fullname string `json:"fullname" form:"fullname"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	fullname := strings.TrimSpace(req.Fullname)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	if fullname == "" || username == "" || email == "" || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}

	passWord, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}
	user := &model.User{
		Fullname: fullname,
		Username: username,
		Email:    email,
		Password: passWord,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, errno.ConflictErr.WithMessage("User with email or username already exists")
		}
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	hlog.CtxInfof(ctx, "user registered: %s", user.ID)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*model.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	if (username == "" && email == "") || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("username or email and password are required")
	}
	user, err := s.store.GetUserByLogin(ctx, username, email)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByLogin failed")
	}
	if user == nil || !utils.VerifyPassword(req.Password, user.Password) {
		return nil, errno.AuthorizationFailedErr.WithMessage("Invalid user credentials")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userId string) (*model.User, error) {
	if userId == "" {
		return nil, errno.RequestErr.WithMessage("User ID is required")
	}
	user, err := s.store.GetUserById(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserById failed")
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	return user, nil
}

package user

import (
	"context"
	"time"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/user/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type Handler struct {
	svc *service.UserService
}

func NewHandler(svc *service.UserService) *Handler {
	return &Handler{svc: svc}
}

type loginResponse struct {
	User        *model.User `json:"user"`
	AccessToken string      `json:"accessToken"`
	Expire      string      `json:"expire"`
}

func (h *Handler) Register(ctx context.Context, c *app.RequestContext) {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	user, err := h.svc.Register(ctx, &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.CreatedCode, user, "User registered successfully")
}

func (h *Handler) Login(ctx context.Context, c *app.RequestContext) {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		handlers.SendBindError(c, err)
		return
	}
	user, err := h.svc.Login(ctx, &req)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	token, expire, err := jwt.GenerateAccessToken(user.ID)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, &loginResponse{
		User:        user,
		AccessToken: token,
		Expire:      expire.Format(time.RFC3339),
	}, "User logged in successfully")
}

func (h *Handler) CurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, ok := handlers.CurrentUserId(c)
	if !ok {
		return
	}
	user, err := h.svc.GetUser(ctx, userId)
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, user, "Current user fetched successfully")
}

func (h *Handler) GetUser(ctx context.Context, c *app.RequestContext) {
	user, err := h.svc.GetUser(ctx, c.Param("userId"))
	if err != nil {
		handlers.SendError(c, err)
		return
	}
	handlers.SendResponse(c, errno.SuccessCode, user, "User fetched successfully")
}

package jwt

import (
	"context"
	"time"

	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/hertz-contrib/jwt"
)

var JwtMiddleware *jwt.HertzJWTMiddleware

type Options struct {
	Secret     string
	Timeout    time.Duration
	MaxRefresh time.Duration
}

// AccessTokenJwtInit builds the bearer token middleware. The identity claim holds the user id.
func AccessTokenJwtInit(opts Options) error {
	mw, err := NewJwtMiddleware(opts)
	if err != nil {
		return err
	}
	JwtMiddleware = mw
	return nil
}

func NewJwtMiddleware(opts Options) (*jwt.HertzJWTMiddleware, error) {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "videotube",
		Key:           []byte(opts.Secret),
		Timeout:       opts.Timeout,
		MaxRefresh:    opts.MaxRefresh,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token, cookie: accessToken",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(string); ok {
				return jwt.MapClaims{constants.IdentityKey: v}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[constants.IdentityKey])
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			hlog.CtxInfof(ctx, "jwt rejected request %s: %v", c.Path(), e)
			return errno.TokenInvalidErr.ErrMsg
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, hertzutils.H{
				"statusCode": code,
				"message":    message,
				"success":    false,
				"errors":     []string{},
			})
		},
		RefreshResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(code, hertzutils.H{
				"statusCode": code,
				"data": hertzutils.H{
					"accessToken": token,
					"expire":      expire.Format(time.RFC3339),
				},
				"message": "Access token refreshed",
				"success": true,
			})
		},
	})
	if err != nil {
		return nil, err
	}
	return mw, nil
}

// GenerateAccessToken signs a token for userId with the shared middleware.
func GenerateAccessToken(userId string) (string, time.Time, error) {
	if JwtMiddleware == nil {
		return "", time.Time{}, errno.ServiceErr.WithMessage("jwt middleware is not initialized")
	}
	return JwtMiddleware.TokenGenerator(userId)
}

// CurrentUserId returns the identity set by the middleware.
func CurrentUserId(c *app.RequestContext) (string, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return "", errno.AuthorizationFailedErr
	}
	id := utils.Transfer(v)
	if id == "" {
		return "", errno.AuthorizationFailedErr
	}
	return id, nil
}

package authfunc

import (
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/middleware"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth verifies the bearer access token and stores the user id under the identity key.
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.JwtMiddleware.MiddlewareFunc(),
	)
}

// PublishGuard authenticates first so anonymous traffic is never counted against the publish quota.
func PublishGuard() []app.HandlerFunc {
	return append(Auth(), middleware.FlowControl(constants.PublishVideoResource))
}

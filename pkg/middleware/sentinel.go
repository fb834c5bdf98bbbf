package middleware

import (
	"context"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/pkg/errors"

	"VideoTube.com/pkg/errno"
)

// InitSentinel starts sentinel and loads a reject rule of qps per second for each resource.
func InitSentinel(qps float64, resources ...string) error {
	if err := sentinel.InitDefault(); err != nil {
		return errors.Wrap(err, "init sentinel failed")
	}
	return LoadFlowRules(qps, resources...)
}

func LoadFlowRules(qps float64, resources ...string) error {
	rules := make([]*flow.Rule, 0, len(resources))
	for _, res := range resources {
		rules = append(rules, &flow.Rule{
			Resource:               res,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		})
	}
	if _, err := flow.LoadRules(rules); err != nil {
		return errors.Wrap(err, "load sentinel flow rules failed")
	}
	return nil
}

// FlowControl guards the route with the sentinel resource. Blocked requests get a 429 envelope.
func FlowControl(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		e, b := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if b != nil {
			hlog.CtxWarnf(ctx, "request %s blocked by sentinel: %s", c.Path(), b.BlockMsg())
			c.AbortWithStatusJSON(int(errno.TooManyRequestsCode), utils.H{
				"statusCode": errno.TooManyRequestsCode,
				"message":    errno.TooManyRequestsErr.ErrMsg,
				"success":    false,
				"errors":     []string{},
			})
			return
		}
		defer e.Exit()
		c.Next(ctx)
	}
}

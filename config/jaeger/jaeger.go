package jaeger

import (
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// InitJaeger installs a global tracer that reports to the jaeger agent. gorm's
// opentracing plugin picks it up through opentracing.GlobalTracer.
func InitJaeger(service, agentAddr string) (opentracing.Tracer, io.Closer) {
	cfg := &jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: agentAddr,
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		hlog.Warnf("init jaeger tracer failed, tracing disabled: %v", err)
		return opentracing.NoopTracer{}, noopCloser{}
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer
}

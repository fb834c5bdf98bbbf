package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"VideoTube.com/cmd/api/handlers"
	handler_interaction "VideoTube.com/cmd/api/handlers/interaction"
	handler_relation "VideoTube.com/cmd/api/handlers/relation"
	handler_tweet "VideoTube.com/cmd/api/handlers/tweet"
	handler_user "VideoTube.com/cmd/api/handlers/user"
	handler_video "VideoTube.com/cmd/api/handlers/video"
	interactiondb "VideoTube.com/cmd/interaction/dal/db"
	interactionservice "VideoTube.com/cmd/interaction/service"
	relationdb "VideoTube.com/cmd/relation/dal/db"
	relationservice "VideoTube.com/cmd/relation/service"
	tweetdb "VideoTube.com/cmd/tweet/dal/db"
	tweetservice "VideoTube.com/cmd/tweet/service"
	userdb "VideoTube.com/cmd/user/dal/db"
	userservice "VideoTube.com/cmd/user/service"
	videodb "VideoTube.com/cmd/video/dal/db"
	videoservice "VideoTube.com/cmd/video/service"
	"VideoTube.com/config"
	"VideoTube.com/config/jaeger"
	"VideoTube.com/config/pprof"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/middleware"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/redis/go-redis/v9"
)

func setLogLevel(level string) {
	switch level {
	case "debug":
		hlog.SetLevel(hlog.LevelDebug)
	case "warn":
		hlog.SetLevel(hlog.LevelWarn)
	case "error":
		hlog.SetLevel(hlog.LevelError)
	default:
		hlog.SetLevel(hlog.LevelInfo)
	}
}

func main() {
	config.Init()
	setLogLevel(config.ConfigInfo.Server.LogLevel)
	pprof.Load(config.ConfigInfo.Server.PprofAddr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if config.ConfigInfo.Jaeger.Enabled {
		_, closer := jaeger.InitJaeger(config.ConfigInfo.Jaeger.ServiceName, config.ConfigInfo.Jaeger.AgentAddr)
		defer closer.Close()
	}

	DB, err := database.Init()
	if err != nil {
		hlog.Fatalf("init mysql failed: %v", err)
	}

	var statsClient redis.Cmdable
	rdb, err := cache.InitRedis(ctx)
	if err != nil {
		hlog.Warnf("redis unavailable, channel stats cache disabled: %v", err)
	} else if rdb != nil {
		statsClient = rdb
		defer rdb.Close()
	}

	uploader, err := oss.InitMinio()
	if err != nil {
		hlog.Fatalf("init minio failed: %v", err)
	}

	var producer mq.MessageProducer = mq.NopProducer{}
	if url := config.RabbitMqURL(); url != "" {
		p, err := mq.NewProducer(url)
		if err != nil {
			hlog.Warnf("rabbitmq producer unavailable, events disabled: %v", err)
		} else {
			producer = p
			defer p.Close()
		}
	}

	userDao := userdb.NewUserDao(DB)
	tweetDao := tweetdb.NewTweetDao(DB)
	subscriptionDao := relationdb.NewSubscriptionDao(DB)
	commentDao := interactiondb.NewCommentDao(DB)
	likeDao := interactiondb.NewLikeDao(DB)
	videoDao := videodb.NewVideoDao(DB)
	playlistDao := videodb.NewPlaylistDao(DB)

	statsCache := cache.NewChannelStatsCache(statsClient, constants.ChannelStatsTTL)
	dashboardService := videoservice.NewDashboardService(videoDao, subscriptionDao, likeDao, statsCache)

	if url := config.RabbitMqURL(); url != "" {
		consumer, err := mq.NewConsumer(url)
		if err != nil {
			hlog.Warnf("rabbitmq consumer unavailable, stats rely on cache ttl: %v", err)
		} else {
			defer consumer.Close()
			if err := consumer.ConsumeChannelEvents(ctx, dashboardService); err != nil {
				hlog.Warnf("consume channel events failed: %v", err)
			}
		}
	}

	if err := middleware.InitSentinel(config.ConfigInfo.Upload.PublishQPS, constants.PublishVideoResource); err != nil {
		hlog.Fatalf("init sentinel failed: %v", err)
	}
	if err := jwt.AccessTokenJwtInit(jwt.Options{
		Secret:     config.ConfigInfo.Jwt.Secret,
		Timeout:    config.JwtTimeout(),
		MaxRefresh: config.JwtMaxRefresh(),
	}); err != nil {
		hlog.Fatalf("init jwt failed: %v", err)
	}

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(config.ConfigInfo.Server.MaxBodySize),
		server.WithExitWaitTime(5*time.Second),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			handlers.SendError(c, errno.ServiceErr)
		})))

	register(r, &apiHandlers{
		user:         handler_user.NewHandler(userservice.NewUserService(userDao)),
		tweet:        handler_tweet.NewHandler(tweetservice.NewTweetService(tweetDao)),
		subscription: handler_relation.NewHandler(relationservice.NewSubscriptionService(subscriptionDao, producer)),
		comment:      handler_interaction.NewCommentHandler(interactionservice.NewCommentService(commentDao)),
		like:         handler_interaction.NewLikeHandler(interactionservice.NewLikeService(likeDao, producer)),
		video:        handler_video.NewVideoHandler(videoservice.NewVideoService(videoDao, uploader, producer)),
		playlist:     handler_video.NewPlaylistHandler(videoservice.NewPlaylistService(playlistDao, videoDao)),
		dashboard:    handler_video.NewDashboardHandler(dashboardService),
	})

	r.Spin()
}

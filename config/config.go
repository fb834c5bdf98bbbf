package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8888")
	v.SetDefault("server.max_body_size", 1024*1024*1024)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", []string{"http://localhost:8870", "http://localhost:8888"})

	v.SetDefault("mysql.addr", "127.0.0.1:3306")
	v.SetDefault("mysql.database", "videotube")
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("mysql.max_open_conns", 50)
	v.SetDefault("mysql.max_idle_conns", 10)

	v.SetDefault("minio.video_bucket", "video")
	v.SetDefault("minio.image_bucket", "picture")

	v.SetDefault("jwt.secret", "videotube-secret")
	v.SetDefault("jwt.timeout", "24h")
	v.SetDefault("jwt.max_refresh", "72h")

	v.SetDefault("jaeger.service_name", "videotube-api")
	v.SetDefault("jaeger.agent_addr", "127.0.0.1:6831")

	v.SetDefault("pagination.default_limit", 10)
	v.SetDefault("pagination.max_limit", 100)

	v.SetDefault("upload.temp_dir", filepath.Join(os.TempDir(), "videotube"))
	v.SetDefault("upload.publish_qps", 20)
}

// Init reads config.yml into ConfigInfo. A missing file is not fatal: defaults
// and VIDEOTUBE_* environment variables still apply.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config.yml")
	v.SetEnvPrefix("VIDEOTUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for _, path := range []string{"../../config", "./config", "../config", "."} {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}

	load(v)

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Redis.Addr == "" {
		logrus.Warn("No redis address configured, channel stats cache disabled")
	}
	if ConfigInfo.RabbitMq.Addr == "" {
		logrus.Warn("No rabbitmq address configured, events will not be published")
	}
}

// Default fills ConfigInfo with defaults only. Tests use it to avoid touching the filesystem.
func Default() {
	v := viper.New()
	setDefaults(v)
	load(v)
}

func load(v *viper.Viper) {
	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.MaxBodySize = v.GetInt("server.max_body_size")
	ConfigInfo.Server.LogLevel = v.GetString("server.log_level")
	ConfigInfo.Server.PprofAddr = v.GetString("server.pprof_addr")
	ConfigInfo.Server.CorsOrigins = v.GetStringSlice("server.cors_origins")

	ConfigInfo.Mysql.Addr = v.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = v.GetString("mysql.database")
	ConfigInfo.Mysql.Username = v.GetString("mysql.username")
	ConfigInfo.Mysql.Password = v.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = v.GetString("mysql.charset")
	ConfigInfo.Mysql.MaxOpenConns = v.GetInt("mysql.max_open_conns")
	ConfigInfo.Mysql.MaxIdleConns = v.GetInt("mysql.max_idle_conns")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")
	ConfigInfo.RabbitMq.Vhost = v.GetString("rabbitmq.vhost")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")
	ConfigInfo.Minio.VideoBucket = v.GetString("minio.video_bucket")
	ConfigInfo.Minio.ImageBucket = v.GetString("minio.image_bucket")
	ConfigInfo.Minio.PublicBaseUrl = v.GetString("minio.public_base_url")

	ConfigInfo.Jwt.Secret = v.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = v.GetString("jwt.timeout")
	ConfigInfo.Jwt.MaxRefresh = v.GetString("jwt.max_refresh")

	ConfigInfo.Jaeger.Enabled = v.GetBool("jaeger.enabled")
	ConfigInfo.Jaeger.ServiceName = v.GetString("jaeger.service_name")
	ConfigInfo.Jaeger.AgentAddr = v.GetString("jaeger.agent_addr")

	ConfigInfo.Pagination.DefaultLimit = v.GetInt("pagination.default_limit")
	ConfigInfo.Pagination.MaxLimit = v.GetInt("pagination.max_limit")

	ConfigInfo.Upload.TempDir = v.GetString("upload.temp_dir")
	ConfigInfo.Upload.PublishQPS = v.GetFloat64("upload.publish_qps")
}

// RabbitMqURL builds the amqp URL, or "" when rabbitmq is not configured.
func RabbitMqURL() string {
	mq := ConfigInfo.RabbitMq
	if mq.Addr == "" {
		return ""
	}
	return "amqp://" + mq.Username + ":" + mq.Password + "@" + mq.Addr + "/" + strings.TrimPrefix(mq.Vhost, "/")
}

func JwtTimeout() time.Duration {
	return parseDuration(ConfigInfo.Jwt.Timeout, 24*time.Hour)
}

func JwtMaxRefresh() time.Duration {
	return parseDuration(ConfigInfo.Jwt.MaxRefresh, 72*time.Hour)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

package config

type config struct {
	Server     server     `yaml:"server" mapstructure:"server"`
	Mysql      mysql      `yaml:"mysql" mapstructure:"mysql"`
	Redis      redis      `yaml:"redis" mapstructure:"redis"`
	RabbitMq   rabbitmq   `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio      minio      `yaml:"minio" mapstructure:"minio"`
	Jwt        jwt        `yaml:"jwt" mapstructure:"jwt"`
	Jaeger     jaeger     `yaml:"jaeger" mapstructure:"jaeger"`
	Pagination pagination `yaml:"pagination" mapstructure:"pagination"`
	Upload     upload     `yaml:"upload" mapstructure:"upload"`
}

type server struct {
	Addr        string `yaml:"addr"`
	MaxBodySize int    `yaml:"max_body_size" mapstructure:"max_body_size"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	// PprofAddr enables the profiling listener when set, e.g. ":6060".
	PprofAddr string `yaml:"pprof_addr" mapstructure:"pprof_addr"`
	// CorsOrigins lists the origins allowed by the CORS middleware.
	CorsOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type mysql struct {
	Addr         string `yaml:"addr"`
	Database     string `yaml:"database"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Charset      string `yaml:"charset"`
	MaxOpenConns int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Vhost    string `yaml:"vhost"`
}

type minio struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey     string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL        bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	VideoBucket   string `yaml:"video_bucket" mapstructure:"video_bucket"`
	ImageBucket   string `yaml:"image_bucket" mapstructure:"image_bucket"`
	PublicBaseUrl string `yaml:"public_base_url" mapstructure:"public_base_url"`
}

type jwt struct {
	Secret     string `yaml:"secret"`
	Timeout    string `yaml:"timeout"`
	MaxRefresh string `yaml:"max_refresh" mapstructure:"max_refresh"`
}

type jaeger struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	AgentAddr   string `yaml:"agent_addr" mapstructure:"agent_addr"`
}

type pagination struct {
	DefaultLimit int `yaml:"default_limit" mapstructure:"default_limit"`
	MaxLimit     int `yaml:"max_limit" mapstructure:"max_limit"`
}

type upload struct {
	TempDir    string  `yaml:"temp_dir" mapstructure:"temp_dir"`
	PublishQPS float64 `yaml:"publish_qps" mapstructure:"publish_qps"`
}

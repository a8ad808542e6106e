package config

// Config 配置主体
type Config struct {
	Server            ServerConfig            `mapstructure:"server"`
	DB                DBConfig                `mapstructure:"database"`
	Mongo             MongoConfig             `mapstructure:"mongo"`
	Redis             RedisConfig             `mapstructure:"redis"`
	MinIO             MinIOConfig             `mapstructure:"minio"`
	JWT               JWTConfig               `mapstructure:"jwt"`
	Content           ContentConfig           `mapstructure:"content"`
	Notification      NotificationConfig      `mapstructure:"notification"`
	Logstash          LogstashConfig          `mapstructure:"logstash"`
	Kafka             KafkaConfig             `mapstructure:"kafka"`
	KafkaNotification KafkaNotificationConfig `mapstructure:"kafka_notification"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	ExternalUseSSL   bool   `mapstructure:"external_use_ssl"`
}

// JWTConfig 令牌签发配置
type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	Issuer          string `mapstructure:"issuer"`
}

// ContentConfig 内容相关开关
type ContentConfig struct {
	// SerializeChapterNumbers 为 true 时，同一故事的章节编号在 Redis 锁内分配
	SerializeChapterNumbers bool `mapstructure:"serialize_chapter_numbers"`
}

// NotificationConfig 通知投递方式: direct 直接写 Mongo, kafka 经由消息队列
type NotificationConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaNotificationConfig struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

const (
	NotificationModeDirect = "direct"
	NotificationModeKafka  = "kafka"
)

package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig configures the SQL backend of the key-value store.
// Driver is "sqlite" (Path is the database file), "mysql" or "postgres".
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) GetPostgresDSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig selects the key-value backend: memory, redis or database.
type StorageConfig struct {
	Backend   string `mapstructure:"backend"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type AuthConfig struct {
	AdminWorkID       string `mapstructure:"admin_work_id"`
	BcryptCost        int    `mapstructure:"bcrypt_cost"`
	JWTSecret         string `mapstructure:"jwt_secret"`
	SessionExpMinutes int    `mapstructure:"session_exp_minutes"`
}

type SubmissionConfig struct {
	Delay              time.Duration `mapstructure:"delay"`
	PointsPerComplaint int           `mapstructure:"points_per_complaint"`
}

type RoutingConfig struct {
	RulesFile string `mapstructure:"rules_file"`
	Fallback  string `mapstructure:"fallback"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// EventsConfig selects where complaint events go. Transport is "redis"
// (pub/sub on Channel) or "mqtt" (topics under MQTTTopicPrefix).
type EventsConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Transport       string `mapstructure:"transport"`
	Channel         string `mapstructure:"channel"`
	MQTTBroker      string `mapstructure:"mqtt_broker"`
	MQTTClientID    string `mapstructure:"mqtt_client_id"`
	MQTTTopicPrefix string `mapstructure:"mqtt_topic_prefix"`
}

func (e EventsConfig) UsesMQTT() bool {
	return e.Transport == "mqtt"
}

type TimezoneConfig struct {
	Business string `mapstructure:"business"`
}

// RateLimitConfig throttles complaint filing and admin login per client IP.
// It needs Redis and is ignored when Redis is not in use.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

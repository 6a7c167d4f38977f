// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

// JWTConfig は認証トークンの署名設定です
type JWTConfig struct {
	SecretKey             string `mapstructure:"secret_key"`
	AccessTokenTTLMinutes int    `mapstructure:"access_token_ttl_minutes"`
}

// NotifierConfig は通知送信方法の選択です
type NotifierConfig struct {
	Type string `mapstructure:"type"` // "log" / "smtp" / "ses"
}

// SMTPConfig はSMTP経由の通知送信設定です
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SESConfig はAWS SES経由の通知送信設定です
type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" / "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

// WorkerConfig は通知配送ワーカーの設定です
type WorkerConfig struct {
	DeliveryIntervalMinutes int `mapstructure:"delivery_interval_minutes"`
	DeliveryBatchLimit      int `mapstructure:"delivery_batch_limit"`
}

// CORSConfig はブラウザからのクロスオリジンアクセス許可設定です
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		Name        string `mapstructure:"name"`
		FrontendURL string `mapstructure:"frontend_url"`
	} `mapstructure:"app"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 秘匿値は環境変数からも読めるようにする (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("smtp.password", "SMTP_PASSWORD")
	viper.BindEnv("ses.access_key_id", "AWS_ACCESS_KEY_ID")
	viper.BindEnv("ses.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.AccessTokenTTLMinutes <= 0 {
		log.Printf("JWT access token TTL not set or invalid, using default '%d'", DefaultAccessTokenTTLMinutes)
		Cfg.JWT.AccessTokenTTLMinutes = DefaultAccessTokenTTLMinutes
	}
	if Cfg.Notifier.Type == "" {
		Cfg.Notifier.Type = DefaultNotifierType
	}
	if Cfg.Worker.DeliveryIntervalMinutes <= 0 {
		Cfg.Worker.DeliveryIntervalMinutes = DefaultDeliveryIntervalMinutes
	}
	if Cfg.Worker.DeliveryBatchLimit <= 0 {
		Cfg.Worker.DeliveryBatchLimit = DefaultDeliveryBatchLimit
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		if Cfg.App.FrontendURL != "" {
			Cfg.CORS.AllowedOrigins = []string{Cfg.App.FrontendURL}
		} else {
			Cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID"}
	}
	if Cfg.CORS.MaxAge <= 0 {
		Cfg.CORS.MaxAge = 300
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth.Enabled のデフォルト値を設定 (未設定なら true = 有効 にする)
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Log Level: %s", Cfg.Log.Level)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Notifier Type: %s", Cfg.Notifier.Type)

	return nil
}

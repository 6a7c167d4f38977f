// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "flashcard-keep"
	AppVersion = "0.1.0"
)

// デフォルト設定値
const (
	DefaultServerPort              = ":8080"
	DefaultLogLevel                = "info"
	DefaultAccessTokenTTLMinutes   = 60
	DefaultNotifierType            = "log"
	DefaultDeliveryIntervalMinutes = 1
	DefaultDeliveryBatchLimit      = 200
)

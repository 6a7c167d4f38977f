package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス。
// expires_in は秒単位で、クライアント側の再ログイン判定に使う
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // 常に "Bearer"
	ExpiresIn   int    `json:"expires_in"`
}

// JWTCustomClaims はアクセストークンのペイロード。
// sub にはテナントIDを入れる
type JWTCustomClaims struct {
	Name                 string `json:"name,omitempty"` // 表示用のテナント名
	jwt.RegisteredClaims        // 標準クレーム (iss, sub, exp など)
}

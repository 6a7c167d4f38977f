// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrTenantNotFound = errors.New("tenant not found or invalid")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// ErrInvalidOperation はカードの状態上許されない操作
	// (Inactiveカードへの回答、不正な昇格先の指定など) を表す
	ErrInvalidOperation = errors.New("invalid operation for current card state")

	// ErrInvalidConfig はスケジューリング設定の矛盾
	// (quiet_hours_start >= quiet_hours_end など) を表す
	ErrInvalidConfig = errors.New("invalid scheduling configuration")
)

// APIError はAPIエラーレスポンスの構造体
type APIError struct {
	Message string `json:"message"`
}

// ErrorDetail はクライアントに返すエラーの詳細
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse は構造化エラーレスポンスのエンベロープ
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコードとクライアント向けメッセージを持つアプリケーションエラー。
// errors.Is / errors.As でラップ元のセンチネルエラーまで辿れる。
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

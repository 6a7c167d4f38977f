package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go_5_flashcard_keep/internal/model"
)

// リクエストボディの上限。スケジューリングAPIに巨大なボディは来ない前提
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディを1つのJSON値としてデコードします。
// 未知のフィールド・後続データ・サイズ超過はすべて ErrInvalidInput になる
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	// ボディに複数のJSON値が並んでいるリクエストは受け付けない
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.ErrInvalidInput
	}
	return nil
}

// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go_5_flashcard_keep/internal/model"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode int
	// 成功時のレスポンスボディの具体的な型はテスト毎に異なるため、
	// 検証は呼び出し側で行います。ここではステータスの検証に留めます。
}

// sendRequest はHTTPリクエストを送信し、基本的なレスポンス情報を返します。
// ステータスコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	// デフォルトヘッダー
	if details.Body != nil && reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// カスタムヘッダー
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	client := server.Client()
	resp, err := client.Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	return resp.StatusCode, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのボディを検証します。
// 構造化エラー {"error": {"code", "message"}} を想定し、パースできない場合は
// 生ボディの部分一致にフォールバックします。
func verifyErrorResponse(t *testing.T, logger *slog.Logger, bodyBytes []byte, expectedErrorPart string, tcName string) {
	t.Helper()
	if expectedErrorPart == "" {
		return // 期待するエラーメッセージがない場合は何もしない
	}

	var errResp model.APIErrorResponse
	err := json.Unmarshal(bodyBytes, &errResp)
	if err == nil && (errResp.Error.Code != "" || errResp.Error.Message != "") {
		combined := errResp.Error.Code + " " + errResp.Error.Message
		assert.True(t, strings.Contains(combined, expectedErrorPart),
			"Expected error part '%s' in '%s' for test case '%s'", expectedErrorPart, combined, tcName)
	} else {
		logger.Warn("Error response body not valid structured error JSON.",
			slog.String("test_case", tcName),
			slog.String("raw_body", string(bodyBytes)),
		)
		assert.True(t, strings.Contains(string(bodyBytes), expectedErrorPart),
			"Expected error part '%s' in raw body '%s' for test case '%s'", expectedErrorPart, string(bodyBytes), tcName)
	}
}

// clearTable は指定されたモデルのテーブルデータをクリアします。
// GORMモデルをinterface{}として受け取ることで、任意のテーブルに対応できます。
func clearTable(t *testing.T, db *gorm.DB, modelInstance interface{}) {
	t.Helper()
	err := db.Unscoped().Where("1 = 1").Delete(modelInstance).Error
	require.NoError(t, err, fmt.Sprintf("Failed to clear table for model %T", modelInstance))
}

// minInt は2つのintのうち小さい方を返します。
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// internal/handlers/main_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_listen_keep/internal/model"
)

// testLogger はテスト出力を汚さないための捨てロガーを返します
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createRequest はJSONボディ付きのテストリクエストを組み立てます。
// body が string の場合はそのまま生のボディとして送る（壊れたJSONのテスト用）。
// userID が non-nil なら開発用認証ヘッダー (X-User-ID) を付与します。
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// createMultipartRequest は multipart/form-data のテストリクエストを組み立てます。
// filename が空のときはファイルパートを付けない。
func createMultipartRequest(t *testing.T, path string, fields map[string]string, filename string, fileBody []byte, userID *uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(fileBody)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// assertAPIError はエラーレスポンスの形式とエラーコードを検証します
func assertAPIError(t *testing.T, rr *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	var resp model.APIErrorResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err, "failed to unmarshal error response body")
	assert.Equal(t, expectedCode, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message, "error message should not be empty")
}

package audit

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stock-audit/core/manifest"
	"stock-audit/core/storage"
	"stock-audit/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()
	var bucket *storage.Bucket
	if client != nil {
		bucket = storage.NewBucket(client, "audit")
	}
	opts := Options{Manifest: manifest.Config{Prefix: "manifests/", MaxUploadBytes: 1024}}

	app := fiber.New()
	require.NoError(t, NewFeature(bucket, opts, nil, nil).Load(app))
	return app
}

func jsonRequest(method, path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/audit/manifest", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHandler_AuditFlow(t *testing.T) {
	app := setupApp(t, nil)

	resp, err := app.Test(jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "audit"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(uploadRequest(t, "march.csv", widgetsCSV, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	loaded := decode[ManifestResponse](t, resp)
	assert.Equal(t, "Serial No", loaded.Manifest.Columns.Serial)
	assert.Equal(t, 3, *loaded.Snapshot.Summary.Expected)

	resp, err = app.Test(jsonRequest("POST", "/audit/scan", ScanRequest{Value: "abc123"}))
	require.NoError(t, err)
	scan := decode[ScanResponse](t, resp)
	assert.Equal(t, "Expected: ABC123 • Widget", scan.Message)
	assert.False(t, scan.Warning)

	resp, err = app.Test(jsonRequest("POST", "/audit/scan", ScanRequest{Value: "ABC123"}))
	require.NoError(t, err)
	scan = decode[ScanResponse](t, resp)
	assert.Equal(t, "Serial Already Scanned: ABC123", scan.Message)
	assert.True(t, scan.Warning)
	assert.Equal(t, 1, scan.Snapshot.Summary.Duplicates)

	resp, err = app.Test(jsonRequest("POST", "/audit/scan", ScanRequest{Value: "  "}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/audit/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"DEF456", "GHI789"}, decode[[]string](t, resp))

	resp, err = app.Test(httptest.NewRequest("GET", "/audit/missing/all", nil))
	require.NoError(t, err)
	assert.Equal(t, "DEF456\nGHI789", readBody(t, resp))

	resp, err = app.Test(httptest.NewRequest("POST", "/audit/missing/next", nil))
	require.NoError(t, err)
	next := decode[NextResponse](t, resp)
	assert.Equal(t, NextResponse{ID: "DEF456", Missing: 1}, next)

	resp, err = app.Test(httptest.NewRequest("POST", "/audit/missing/next", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/audit/missing/next", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/audit/scanned", nil))
	require.NoError(t, err)
	assert.Equal(t, "ABC123", readBody(t, resp))

	resp, err = app.Test(jsonRequest("PUT", "/audit/manifest/columns", manifest.Columns{Serial: "Serial No"}))
	require.NoError(t, err)
	reloaded := decode[ManifestResponse](t, resp)
	assert.Equal(t, 0, reloaded.Snapshot.Summary.Handled)
	assert.Empty(t, reloaded.Manifest.Columns.Part)

	resp, err = app.Test(httptest.NewRequest("GET", "/audit", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  []*http.Request
		req    func(t *testing.T) *http.Request
		status int
	}{
		{
			name:   "InvalidMode",
			req:    func(t *testing.T) *http.Request { return jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "party"}) },
			status: fiber.StatusBadRequest,
		},
		{
			name:   "ManifestOutsideAudit",
			req:    func(t *testing.T) *http.Request { return uploadRequest(t, "march.csv", widgetsCSV, nil) },
			status: fiber.StatusConflict,
		},
		{
			name:   "UnreadableManifest",
			setup:  []*http.Request{jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "audit"})},
			req:    func(t *testing.T) *http.Request { return uploadRequest(t, "march.csv", "Serial No\n", nil) },
			status: fiber.StatusUnprocessableEntity,
		},
		{
			name:  "UnknownColumn",
			setup: []*http.Request{jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "audit"})},
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "march.csv", widgetsCSV, map[string]string{"serial_column": "Nope"})
			},
			status: fiber.StatusBadRequest,
		},
		{
			name:  "TooLarge",
			setup: []*http.Request{jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "audit"})},
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "big.csv", "Serial\n"+strings.Repeat("A1\n", 600), nil)
			},
			status: fiber.StatusRequestEntityTooLarge,
		},
		{
			name:   "ColumnsWithoutManifest",
			req:    func(t *testing.T) *http.Request { return jsonRequest("PUT", "/audit/manifest/columns", manifest.Columns{Serial: "SN"}) },
			status: fiber.StatusConflict,
		},
		{
			name:   "ExportWithoutStorage",
			req:    func(t *testing.T) *http.Request { return jsonRequest("POST", "/audit/export", ExportRequest{Format: "json"}) },
			status: fiber.StatusServiceUnavailable,
		},
		{
			name:   "StoredManifestWithoutObject",
			req:    func(t *testing.T) *http.Request { return jsonRequest("POST", "/audit/manifest/storage", StorageManifestRequest{}) },
			status: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(t, nil)
			for _, r := range tt.setup {
				_, err := app.Test(r)
				require.NoError(t, err)
			}

			resp, err := app.Test(tt.req(t))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandler_QuickCapture(t *testing.T) {
	app := setupApp(t, nil)

	_, err := app.Test(jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "quick"}))
	require.NoError(t, err)

	resp, err := app.Test(jsonRequest("POST", "/audit/scan", ScanRequest{Value: "a1"}))
	require.NoError(t, err)
	scan := decode[ScanResponse](t, resp)
	assert.Equal(t, "Added: A1", scan.Message)
	assert.Nil(t, scan.Snapshot.Summary.Missing)

	resp, err = app.Test(httptest.NewRequest("GET", "/audit/missing/all", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestHandler_Storage(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "audit", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "manifests/"},
		minio.ObjectInfo{Key: "manifests/march.csv", Size: int64(len(widgetsCSV))},
	))
	client.On("GetObject", mock.Anything, "audit", "manifests/march.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(widgetsCSV)), nil)
	client.On("PutObject", mock.Anything, "audit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	app := setupApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/audit/manifests", nil))
	require.NoError(t, err)
	objects := decode[[]storage.Object](t, resp)
	require.Len(t, objects, 1)
	assert.Equal(t, "manifests/march.csv", objects[0].Key)

	_, err = app.Test(jsonRequest("POST", "/audit/mode", ModeRequest{Mode: "audit"}))
	require.NoError(t, err)

	resp, err = app.Test(jsonRequest("POST", "/audit/manifest/storage", StorageManifestRequest{Object: "manifests/march.csv"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	loaded := decode[ManifestResponse](t, resp)
	assert.Equal(t, 3, loaded.Manifest.Expected)

	resp, err = app.Test(httptest.NewRequest("POST", "/audit/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	result := decode[ExportResult](t, resp)
	assert.True(t, strings.HasSuffix(result.Key, ".json"))
}

func objectChannel(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

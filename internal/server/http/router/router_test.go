package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/resi/internal/config"
	"github.com/polkiloo/resi/internal/domain/model"
	pkgAuth "github.com/polkiloo/resi/internal/pkg/auth"
	"github.com/polkiloo/resi/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/resi/internal/test"
)

type healthStub struct{ err error }

func (h healthStub) HealthCheck(context.Context) error { return h.err }

func newEngine(facade handlers.Facade, health HealthChecker) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{ImportMaxBytes: 1 << 20, CORSAllowedOrigins: []string{"*"}}
	engine := Setup(facade, health, logger, cfg)
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.FacadeStub{TokenParserStub: testhelpers.TokenParserStub{Identity: pkgAuth.Identity{UserID: 7}}}
	engine := newEngine(facade, healthStub{})
	bearer := map[string]string{"Authorization": "Bearer token", "Content-Type": "application/json"}

	body, _ := json.Marshal(map[string]string{"email": "a@x.com", "password": "pass"})
	if resp := serve(engine, http.MethodPost, "/api/auth/register", bytes.NewReader(body), map[string]string{"Content-Type": "application/json"}); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for register, got %d", resp.Code)
	}
	if resp := serve(engine, http.MethodPost, "/api/auth/login", bytes.NewReader(body), map[string]string{"Content-Type": "application/json"}); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for login, got %d", resp.Code)
	}

	cases := []struct {
		method, target, body string
		status               int
	}{
		{http.MethodGet, "/api/resi", "", http.StatusOK},
		{http.MethodPost, "/api/resi", `{"nomor_resi":"R1"}`, http.StatusCreated},
		{http.MethodPut, "/api/resi/1", `{"nama_barang":"Box"}`, http.StatusOK},
		{http.MethodDelete, "/api/resi/1", "", http.StatusOK},
		{http.MethodGet, "/api/resi/export", "", http.StatusOK},
	}
	for _, tc := range cases {
		resp := serve(engine, tc.method, tc.target, strings.NewReader(tc.body), bearer)
		if resp.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.target, tc.status, resp.Code)
		}
	}

	resp := serve(engine, http.MethodGet, "/api/resi", nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	resp = serve(engine, http.MethodGet, "/api/resi/export", nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for export without token, got %d", resp.Code)
	}
	resp = serve(engine, http.MethodPost, "/api/resi/import", nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for import without token, got %d", resp.Code)
	}
}

func TestSetupRoutesScopesRequestsToTokenOwner(t *testing.T) {
	var listedFor int64
	facade := testhelpers.FacadeStub{
		ReceiptFacadeStub: testhelpers.ReceiptFacadeStub{ListFn: func(_ context.Context, userID int64, _ model.ReceiptFilter) ([]model.Receipt, error) {
			listedFor = userID
			return nil, nil
		}},
		TokenParserStub: testhelpers.TokenParserStub{ParseFn: func(token string) (pkgAuth.Identity, error) {
			if token != "user-9" {
				return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
			}
			return pkgAuth.Identity{UserID: 9}, nil
		}},
	}
	engine := newEngine(facade, healthStub{})

	resp := serve(engine, http.MethodGet, "/api/resi?user_id=1", nil, map[string]string{"Authorization": "Bearer user-9"})
	if resp.Code != http.StatusOK || listedFor != 9 {
		t.Fatalf("expected listing for token owner, got %d user=%d", resp.Code, listedFor)
	}

	resp = serve(engine, http.MethodGet, "/api/resi", nil, map[string]string{"Authorization": "Bearer forged"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}
}

func TestSetupBannerHealthAndRequestID(t *testing.T) {
	engine := newEngine(testhelpers.FacadeStub{}, healthStub{})

	resp := serve(engine, http.MethodGet, "/", nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != banner {
		t.Fatalf("unexpected banner response %d %q", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}

	resp = serve(engine, http.MethodGet, "/healthz", nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected healthy, got %d", resp.Code)
	}

	engine = newEngine(testhelpers.FacadeStub{}, healthStub{err: errors.New("db down")})
	resp = serve(engine, http.MethodGet, "/healthz", nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestSetupCompressesExport(t *testing.T) {
	csv := strings.Repeat("R1,Box,Toko,JNE,2024-01-01\n", 50)
	facade := testhelpers.FacadeStub{
		ReceiptFacadeStub: testhelpers.ReceiptFacadeStub{ExportFn: func(context.Context, int64, model.ReceiptFilter) ([]byte, error) {
			return []byte(csv), nil
		}},
		TokenParserStub: testhelpers.TokenParserStub{Identity: pkgAuth.Identity{UserID: 1}},
	}
	engine := newEngine(facade, healthStub{})

	resp := serve(engine, http.MethodGet, "/api/resi/export", nil, map[string]string{"Authorization": "Bearer t", "Accept-Encoding": "gzip"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", resp.Header().Get("Content-Encoding"))
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, _ := io.ReadAll(reader)
	if string(data) != csv {
		t.Fatal("unexpected decompressed export")
	}
}

func TestSetupCORSPreflight(t *testing.T) {
	engine := newEngine(testhelpers.FacadeStub{}, healthStub{})
	resp := serve(engine, http.MethodOptions, "/api/resi", nil, map[string]string{
		"Origin":                         "https://app.example.com",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Authorization, Content-Type",
	})
	if resp.Code != http.StatusOK && resp.Code != http.StatusNoContent {
		t.Fatalf("expected successful preflight, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected allow-origin header on preflight")
	}
	if !strings.Contains(resp.Header().Get("Access-Control-Allow-Headers"), "Authorization") {
		t.Fatalf("expected Authorization to be allowed, got %q", resp.Header().Get("Access-Control-Allow-Headers"))
	}
}

var _ handlers.Facade = testhelpers.FacadeStub{}

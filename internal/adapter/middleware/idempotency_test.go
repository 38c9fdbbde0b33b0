package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	userDomain "elite-paisa-backend/internal/domain/user"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

// withPrincipal simulates the auth middleware having already run.
func withPrincipal(p *userDomain.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if p != nil {
				c.Set(principalKey, p)
			}
			return next(c)
		}
	}
}

func setupIdemp(rdb *redis.Client, p *userDomain.Principal, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(withPrincipal(p), Idempotency(rdb, 2*time.Minute, zap.NewNop()))
	e.POST("/applications", handler)
	e.GET("/applications", handler)
	return e
}

func doReq(e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func idempHeaders() map[string]string {
	return map[string]string{
		"Ax-Request-Id": strings.Repeat("a", 32),
		"Ax-Request-At": time.Now().UTC().Format(time.RFC3339),
	}
}

var caller = &userDomain.Principal{ID: strings.Repeat("c", 32), Role: userDomain.RoleClient}

func createdHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func TestIdempotency_GETBypassed(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, nil, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := doReq(e, http.MethodGet, "/applications", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
}

func TestIdempotency_OptInOnly(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, caller, createdHandler)

	// No Ax-Request-Id means no dedup; both writes reach the handler.
	rec := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{}`)), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201", rec.Code)
	}
}

func TestIdempotency_InvalidRequestID(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, caller, createdHandler)

	h := idempHeaders()
	h["Ax-Request-Id"] = "NOT-VALID"
	rec := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{}`)), h)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestIdempotency_SkewedRequestAt(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, caller, createdHandler)

	h := idempHeaders()
	h["Ax-Request-At"] = time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339)
	rec := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{}`)), h)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestIdempotency_RequiresPrincipal(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, nil, createdHandler)

	rec := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{}`)), idempHeaders())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestIdempotency_Replay(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()

	var calls int
	e := setupIdemp(rdb, caller, func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"call": calls})
	})

	h := idempHeaders()
	body := []byte(`{"loanAmount":100000}`)

	rec1 := doReq(e, http.MethodPost, "/applications", bytes.NewReader(body), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first: code = %d body=%s", rec1.Code, rec1.Body.String())
	}
	rec2 := doReq(e, http.MethodPost, "/applications", bytes.NewReader(body), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay: code = %d", rec2.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
}

func TestIdempotency_SameIDDifferentBody(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, caller, createdHandler)

	h := idempHeaders()
	rec1 := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{"x":1}`)), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first: code = %d", rec1.Code)
	}
	rec2 := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{"x":2}`)), h)
	if rec2.Code != http.StatusConflict {
		t.Fatalf("reused id with new body: code = %d, want 409", rec2.Code)
	}
}

func TestIdempotency_InProgressConflict(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	e := setupIdemp(rdb, caller, createdHandler)

	body := []byte(`{"x":1}`)
	key := buildKey(http.MethodPost, "/applications", caller.ID, strings.Repeat("a", 32))
	entry := idempEntry{
		InProgress:  true,
		BodySHA256:  bodyHash(body),
		RequestID:   strings.Repeat("a", 32),
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}
	if ok, err := provisionalSet(context.Background(), rdb, key, entry); err != nil || !ok {
		t.Fatalf("seed provisional: ok=%v err=%v", ok, err)
	}

	rec := doReq(e, http.MethodPost, "/applications", bytes.NewReader(body), idempHeaders())
	if rec.Code != http.StatusConflict {
		t.Fatalf("code = %d, want 409", rec.Code)
	}
}

func TestIdempotency_StoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	e := setupIdemp(rdb, caller, createdHandler)

	rec := doReq(e, http.MethodPost, "/applications", bytes.NewReader([]byte(`{}`)), idempHeaders())
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("code = %d, want 503", rec.Code)
	}
}

func TestParseAxRequestAt(t *testing.T) {
	now := time.Now().UTC()
	if ts, err := parseAxRequestAt("2026-08-29T10:00:00+05:30"); err != nil {
		t.Fatalf("rfc3339: %v", err)
	} else if want := time.Date(2026, 8, 29, 4, 30, 0, 0, time.UTC); !ts.Equal(want) {
		t.Fatalf("rfc3339 = %v, want %v", ts, want)
	}
	if ts, err := parseAxRequestAt("1736123456"); err != nil || !ts.Equal(time.Unix(1736123456, 0).UTC()) {
		t.Fatalf("epoch seconds: ts=%v err=%v", ts, err)
	}
	if ts, err := parseAxRequestAt("1736123456789"); err != nil || !ts.Equal(time.UnixMilli(1736123456789).UTC()) {
		t.Fatalf("epoch millis: ts=%v err=%v", ts, err)
	}
	for _, raw := range []string{"", "not-a-time", now.Format("2006-01-02T15:04:05")} {
		if _, err := parseAxRequestAt(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestValidReqID(t *testing.T) {
	if !validReqID(strings.Repeat("a", 32)) || !validReqID("3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88") {
		t.Fatal("valid ids rejected")
	}
	for _, s := range []string{"", strings.Repeat("a", 31), strings.Repeat("Z", 32)} {
		if validReqID(s) {
			t.Fatalf("invalid id accepted: %q", s)
		}
	}
}

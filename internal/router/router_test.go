package router

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jaswdr/faker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/auth"
	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/docs"
	"github.com/connectvan/backend/internal/i18n"
	"github.com/connectvan/backend/internal/middleware"
	"github.com/connectvan/backend/internal/realtime"
	"github.com/connectvan/backend/internal/security"
	"github.com/connectvan/backend/internal/store"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	engine *gin.Engine
	store  *store.CatalogStore
	cookie *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	require.NoError(t, i18n.Load())

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		AppEnv: "test",
		Security: config.Security{
			RateLimitRPS:   0,
			SessionSecret:  "test-secret",
			SessionTTL:     time.Hour,
			AdminUsername:  "admin",
			AdminPassword:  "admin123",
			AllowedOrigins: []string{"*"},
		},
		Storage: config.Storage{Driver: config.StorageRedis, UploadMaxBytes: 1 << 20},
		Listing: config.Listing{HeroRotateInterval: time.Hour},
	}
	logger := zap.NewNop()
	cs := store.NewCatalogStore(store.NewRedisBackend(rdb), logger)
	gate, err := auth.NewGate(logger, cfg.Security,
		security.NewSessionManager(cfg.Security.SessionSecret, cfg.Security.SessionTTL),
		store.NewSessionStore(rdb, cfg.Security.SessionTTL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := realtime.NewHub(logger, cs, cfg.Listing.HeroRotateInterval)
	go hub.Run(ctx)

	engine := New(Dependencies{
		Config: cfg,
		Logger: logger,
		Redis:  rdb,
		Store:  cs,
		Gate:   gate,
		Hub:    hub,
		Admin:  admin.NewService(logger, cs),
		Images: admin.NewImageEncoder(cfg.Storage.UploadMaxBytes),
	})
	return &testApp{engine: engine, store: cs}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.send(req)
}

func (a *testApp) send(req *http.Request) *httptest.ResponseRecorder {
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			a.cookie = c
		}
	}
	require.NotNil(t, a.cookie)
	assert.True(t, a.cookie.HttpOnly)
	assert.Zero(t, a.cookie.MaxAge, "session cookie must end with the browser session")
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if v != nil {
		require.NoError(t, json.Unmarshal(env.Data, v))
	}
	return env
}

func TestGate(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/api/v1/admin/stats", nil).Code)

	w = app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Usuário ou senha incorretos.", decode(t, w, nil).Message)
	assert.Equal(t, http.StatusFound, app.do(t, http.MethodGet, "/admin", nil).Code)

	app.login(t)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/admin", nil).Code)
	w = app.do(t, http.MethodGet, "/login", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var sess struct{ Authenticated bool }
	decode(t, app.do(t, http.MethodGet, "/api/v1/auth/session", nil), &sess)
	assert.True(t, sess.Authenticated)

	assert.Equal(t, http.StatusOK, app.do(t, http.MethodPost, "/api/v1/auth/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/api/v1/admin/stats", nil).Code)
}

func TestListing(t *testing.T) {
	app := newTestApp(t)

	var drivers []struct {
		ID          string `json:"id"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	w := app.do(t, http.MethodGet, "/api/v1/listing/drivers?q=itaim", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &drivers)
	require.Len(t, drivers, 1)
	assert.Equal(t, "1", drivers[0].ID)
	assert.Equal(t, "https://wa.me/5511999999999", drivers[0].WhatsAppURL)

	var categories []string
	decode(t, app.do(t, http.MethodGet, "/api/v1/listing/categories", nil), &categories)
	assert.Equal(t, []string{"Borracharia", "Papelaria", "Oficina"}, categories)

	var page struct {
		Partners []struct{ Category string } `json:"partners"`
		Anchors  map[string]string           `json:"anchors"`
		Hero     struct {
			Current struct{ Index int } `json:"current"`
		} `json:"hero"`
	}
	decode(t, app.do(t, http.MethodGet, "/?category=Papelaria", nil), &page)
	require.Len(t, page.Partners, 1)
	assert.Equal(t, "Papelaria", page.Partners[0].Category)
	assert.Equal(t, "#motoristas", page.Anchors["drivers"])
	assert.Equal(t, "#parceiros", page.Anchors["partners"])
}

func TestAdminDrivers(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	fake := faker.New()

	w := app.do(t, http.MethodPost, "/api/v1/admin/drivers", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/admin/drivers", map[string]string{
		"name":          fake.Person().Name(),
		"email":         "not-an-email",
		"vehicleType":   "Van",
		"neighborhoods": "Lapa",
		"schools":       "Vera Cruz",
		"description":   "d",
		"whatsapp":      "5511",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/admin/drivers", map[string]string{
		"name":          fake.Person().Name(),
		"email":         fake.Internet().Email(),
		"vehicleType":   "Van",
		"neighborhoods": "Lapa, Perdizes",
		"schools":       "Vera Cruz",
		"description":   fake.Lorem().Sentence(5),
		"whatsapp":      "5511900000000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID            string   `json:"id"`
		Neighborhoods []string `json:"neighborhoods"`
	}
	decode(t, w, &created)
	assert.Equal(t, []string{"Lapa", "Perdizes"}, created.Neighborhoods)

	drivers, err := app.store.Drivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 4)
	assert.Equal(t, created.ID, drivers[0].ID)

	w = app.do(t, http.MethodPatch, "/api/v1/admin/drivers/"+created.ID, map[string]string{"vehicleType": "Micro-ônibus"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPatch, "/api/v1/admin/drivers/nope", map[string]string{"name": "x"}).Code)

	w = app.do(t, http.MethodDelete, "/api/v1/admin/drivers/"+created.ID, nil)
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.Equal(t, "Tem certeza que deseja excluir este motorista?", decode(t, w, nil).Message)

	var del struct{ Removed bool }
	decode(t, app.do(t, http.MethodDelete, "/api/v1/admin/drivers/"+created.ID+"?confirm=true", nil), &del)
	assert.True(t, del.Removed)
	decode(t, app.do(t, http.MethodDelete, "/api/v1/admin/drivers/"+created.ID+"?confirm=true", nil), &del)
	assert.False(t, del.Removed)
}

func TestAdminHeroUpload(t *testing.T) {
	app := newTestApp(t)
	app.login(t)
	require.NoError(t, app.store.MutateHeroImages(context.Background(), func([]string) ([]string, error) { return nil, nil }))

	var hero struct{ Current struct{ Fallback bool } }
	decode(t, app.do(t, http.MethodGet, "/api/v1/listing/hero", nil), &hero)
	assert.True(t, hero.Current.Fallback)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "banner.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hero", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := app.send(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var images []string
	decode(t, w, &images)
	require.Len(t, images, 1)
	assert.True(t, strings.HasPrefix(images[0], "data:image/png;base64,"))

	decode(t, app.do(t, http.MethodGet, "/api/v1/listing/hero", nil), &hero)
	assert.False(t, hero.Current.Fallback)
}

func TestAdminBackupRestore(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	w := app.do(t, http.MethodGet, "/api/v1/admin/backup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "backup_connectvan_")
	backup := w.Body.Bytes()

	assert.Equal(t, http.StatusOK, app.do(t, http.MethodDelete, "/api/v1/admin/partners/1?confirm=true", nil).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/restore", bytes.NewReader(backup))
	req.Header.Set("Content-Type", "application/json")
	w = app.send(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	partners, err := app.store.Partners(context.Background())
	require.NoError(t, err)
	assert.Len(t, partners, 3)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/restore", strings.NewReader(`{"data":{"drivers":[{"name":"x"}]}}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, app.send(req).Code)

	var st admin.Stats
	decode(t, app.do(t, http.MethodGet, "/api/v1/admin/stats", nil), &st)
	assert.Equal(t, 50, st.DriversPercent)
}

func TestDocs(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/docs/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/admin/restore")

	w = app.do(t, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "unpkg.com")
	assert.NotContains(t, app.do(t, http.MethodGet, "/health", nil).Header().Get("Content-Security-Policy"), "unpkg.com")
}

func TestDocsCoverEveryRoute(t *testing.T) {
	app := newTestApp(t)

	var doc struct {
		Paths map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(docs.OpenAPI(), &doc))

	for _, route := range app.engine.Routes() {
		if strings.HasPrefix(route.Path, docs.PathPrefix) {
			continue
		}
		segments := strings.Split(route.Path, "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path := strings.Join(segments, "/")
		ops, ok := doc.Paths[path]
		if !assert.Truef(t, ok, "%s is not documented", path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.Truef(t, ok, "%s %s is not documented", route.Method, path)
	}
}

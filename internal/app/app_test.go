package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/config"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/fsdevblog/bulkmeta/internal/tokens"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, dbType config.DBType) config.Config {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return config.Config{
		ServerAddress: "localhost:0",
		DBType:        dbType,
		SQLitePath:    t.TempDir() + "/app.sqlite",
		JWTSecret:     "secret",
		MetaKey:       config.DefaultMetaKey,
		PostTypes:     config.DefaultPostTypes,
		NoticeTTL:     config.DefaultNoticeTTL,
		NoticeLimit:   config.DefaultNoticeLimit,
		SeedFile:      "../fixtures/testdata/posts.yaml",
		Logger:        logger,
	}
}

func TestApp_EndToEnd(t *testing.T) {
	for _, dbType := range []config.DBType{config.DBTypeInMemory, config.DBTypeSQLite} {
		t.Run(string(dbType), func(t *testing.T) {
			a, err := New(t.Context(), testConfig(t, dbType))
			require.NoError(t, err)
			defer a.Close()

			token, err := tokens.GenerateActorJWT(1, string(services.RoleEditor), time.Hour, []byte("secret"))
			require.NoError(t, err)

			form := url.Values{
				"action": {services.ActionSetFocusKeyword},
				"post[]": {"1", "2", "3", "99", "1"},
			}
			req := httptest.NewRequest(http.MethodPost, "/admin/bulk-action", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			a.Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/admin/posts?bulk_has_errors=1&bulk_updated=2", rec.Header().Get("Location"))

			kw, err := a.Services().Posts.GetMeta(t.Context(), 2, config.DefaultMetaKey)
			require.NoError(t, err)
			assert.Equal(t, "Draft about espresso", kw)

			rec = httptest.NewRecorder()
			a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			assert.Contains(t, rec.Body.String(), `outcome="updated"} 2`)
		})
	}
}

func TestApp_RunRequiresSecret(t *testing.T) {
	conf := testConfig(t, config.DBTypeInMemory)
	conf.JWTSecret = ""
	conf.SeedFile = ""

	a, err := New(t.Context(), conf)
	require.NoError(t, err)
	defer a.Close()

	require.ErrorIs(t, a.Run(t.Context()), ErrNoJWTSecret)
}

func TestApp_RunHTTPSShutdown(t *testing.T) {
	conf := testConfig(t, config.DBTypeInMemory)
	conf.SeedFile = ""
	conf.EnableHTTPS = true
	conf.TLSCertFile = t.TempDir() + "/cert.pem"
	conf.TLSKeyFile = t.TempDir() + "/key.pem"

	a, err := New(t.Context(), conf)
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, statErr := os.Stat(conf.TLSCertFile)
		return statErr == nil
	}, 10*time.Second, 50*time.Millisecond)
	cancel()

	select {
	case runErr := <-done:
		require.NoError(t, runErr)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_BadSeed(t *testing.T) {
	conf := testConfig(t, config.DBTypeInMemory)
	conf.SeedFile = "missing.yaml"

	_, err := New(t.Context(), conf)
	require.Error(t, err)
}

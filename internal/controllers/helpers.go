package controllers

import (
	"net/url"
	"strings"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/controllers/middlewares"
	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	DefaultRequestTimeout = 3 * time.Second
	DefaultRedirectPath   = "/admin/posts"
)

// Параметры редиректа после пакетного действия.
const (
	QueryUpdated   = "bulk_updated"
	QueryError     = "bulk_error"
	QueryHasErrors = "bulk_has_errors"
)

// postTypeOf тип записей из query, по умолчанию models.DefaultPostType.
func postTypeOf(ctx *gin.Context) string {
	return ctx.DefaultQuery("post_type", models.DefaultPostType)
}

// mustActor пользователь из контекста. Маршруты без ActorMiddleware сюда не попадают.
func mustActor(ctx *gin.Context) services.Actor {
	actor, _ := middlewares.ActorFromContext(ctx)
	return actor
}

// safeRedirect принимает только относительный путь того же хоста.
func safeRedirect(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return DefaultRedirectPath
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return DefaultRedirectPath
	}
	return u.String()
}

// withQuery добавляет параметры к относительному адресу, убирая старые значения параметров редиректа.
func withQuery(raw string, params url.Values) string {
	u, err := url.Parse(raw)
	if err != nil {
		u = &url.URL{Path: DefaultRedirectPath}
	}
	q := u.Query()
	for _, k := range []string{QueryUpdated, QueryError, QueryHasErrors} {
		q.Del(k)
	}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

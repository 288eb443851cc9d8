package middlewares

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// gzipWriter обертка над gin.ResponseWriter для сжатия ответов в формате gzip.
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

// Write записывает сжатые данные.
func (g *gzipWriter) Write(data []byte) (int, error) {
	g.Header().Del("Content-Length")
	return g.writer.Write(data) //nolint:wrapcheck
}

// WriteString записывает сжатую строку.
func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

// DefaultMaxBodyBytes предел распакованного тела запроса.
const DefaultMaxBodyBytes int64 = 1 << 20

// GzipMiddleware создает middleware для сжатия ответов в формате gzip.
//
//   - Сжимает ответ, если клиент прислал Accept-Encoding: gzip
//   - Пропускает пути из skipPaths (обработчики, которые сжимают сами)
//
// Параметры:
//   - skipPaths: пути, ответы которых не сжимаются
//
// Возвращает:
//   - gin.HandlerFunc: middleware функция
func GzipMiddleware(skipPaths ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if slices.Contains(skipPaths, ctx.Request.URL.Path) {
			ctx.Next()
			return
		}
		writeGzip(ctx)
	}
}

// writeGzip настраивает сжатие ответа и передает управление дальше по цепочке.
func writeGzip(ctx *gin.Context) {
	if !strings.Contains(ctx.Request.Header.Get("Accept-Encoding"), "gzip") {
		ctx.Next()
		return
	}

	ctx.Header("Content-Encoding", "gzip")
	ctx.Header("Vary", "Accept-Encoding")

	gzw := gzip.NewWriter(ctx.Writer)
	defer func() {
		if closeErr := gzw.Close(); closeErr != nil {
			_ = ctx.Error(fmt.Errorf("close gzip writer: %w", closeErr))
		}
	}()

	ctx.Writer = &gzipWriter{
		ResponseWriter: ctx.Writer,
		writer:         gzw,
	}
	ctx.Next()
}

// GunzipMiddleware распаковывает тела POST, PUT и PATCH запросов с Content-Encoding: gzip.
// Битое тело прерывает запрос с 400, тело больше maxBytes после распаковки с 413.
// Регистрируется после аутентификации.
func GunzipMiddleware(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(ctx *gin.Context) {
		if !readGzip(ctx, maxBytes) {
			return
		}
		ctx.Next()
	}
}

// readGzip распаковывает сжатое тело запроса. Возвращает false, если запрос прерван.
func readGzip(ctx *gin.Context, maxBytes int64) bool {
	if !slices.Contains([]string{http.MethodPost, http.MethodPut, http.MethodPatch}, ctx.Request.Method) {
		return true
	}
	if !strings.Contains(ctx.Request.Header.Get("Content-Encoding"), "gzip") {
		return true
	}

	gzReader, gzErr := gzip.NewReader(ctx.Request.Body)
	if gzErr != nil {
		_ = ctx.Error(fmt.Errorf("read gzip: %w", gzErr))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return false
	}
	defer func() {
		if closeErr := gzReader.Close(); closeErr != nil {
			_ = ctx.Error(fmt.Errorf("close gzip reader: %w", closeErr))
		}
	}()

	bodyBytes, err := io.ReadAll(io.LimitReader(gzReader, maxBytes+1))
	if err != nil {
		_ = ctx.Error(fmt.Errorf("read gzip: %w", err))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return false
	}
	if int64(len(bodyBytes)) > maxBytes {
		_ = ctx.Error(fmt.Errorf("read gzip: body exceeds %d bytes", maxBytes))
		ctx.AbortWithStatus(http.StatusRequestEntityTooLarge)
		return false
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	ctx.Request.Header.Del("Content-Encoding")
	ctx.Request.ContentLength = int64(len(bodyBytes))
	return true
}

package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingController контроллер для проверки работоспособности сервиса.
type PingController struct {
	conn ConnectionChecker // Проверяет соединение с хранилищем записей
}

// NewPingController создает новый экземпляр PingController.
//
// Параметры:
//   - conn: интерфейс для проверки соединения
//
// Возвращает:
//   - *PingController: новый экземпляр контроллера
func NewPingController(conn ConnectionChecker) *PingController {
	return &PingController{conn: conn}
}

// Ping обрабатывает GET /ping запрос. Отвечает "pong" либо 500, если хранилище записей недоступно.
func (c *PingController) Ping(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
	defer cancel()
	if err := c.conn.CheckConnection(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("ping error: %w", err))
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	ctx.String(http.StatusOK, "pong")
}

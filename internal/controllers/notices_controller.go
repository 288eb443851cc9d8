package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/gin-gonic/gin"
)

type NoticesController struct {
	notices NoticeKeeper
}

func NewNoticesController(notices NoticeKeeper) *NoticesController {
	return &NoticesController{notices: notices}
}

// Show обрабатывает GET /admin/notices с параметрами редиректа пакетного действия.
// Сохраненная сводка ошибок отдается один раз.
func (n *NoticesController) Show(ctx *gin.Context) {
	q := services.NoticeQuery{
		ErrorCode: ctx.Query(QueryError),
		HasErrors: ctx.Query(QueryHasErrors) == "1",
	}
	if raw, ok := ctx.GetQuery(QueryUpdated); ok {
		if updated, err := strconv.Atoi(raw); err == nil {
			q.Updated = &updated
		}
	}

	notices, err := n.notices.Render(ctx.Request.Context(), mustActor(ctx).ID, q)
	if err != nil {
		_ = ctx.Error(fmt.Errorf("render notices: %w", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"notices": notices})
}

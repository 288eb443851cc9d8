package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type BulkActionsController struct {
	actions BulkActionRegistry
	notices NoticeKeeper
}

func NewBulkActionsController(actions BulkActionRegistry, notices NoticeKeeper) *BulkActionsController {
	return &BulkActionsController{actions: actions, notices: notices}
}

// bulkActionResponse ответ JSON API на пакетное действие.
type bulkActionResponse struct {
	Updated  int                  `json:"updated"`
	Errors   []services.ItemError `json:"errors"`
	Messages []string             `json:"messages"`
}

// List обрабатывает GET /api/bulk-actions?post_type=.
// Возвращает действия, доступные для типа записей. Для неподдерживаемого типа список пуст.
func (b *BulkActionsController) List(ctx *gin.Context) {
	postType := postTypeOf(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"post_type": postType,
		"actions":   b.actions.List(postType),
	})
}

// Run обрабатывает POST /api/bulk-actions/:action?post_type=.
//
// Тело запроса: {"ids": [1, "2", ...]}. Идентификаторы могут быть числами или строками,
// невалидные значения отбрасываются сервисом.
//
// Ответы:
//   - 200 с итогом пакета
//   - 400 тело не разобрано
//   - 403 у пользователя нет права edit_posts
//   - 404 действие не зарегистрировано для типа записей
//   - 422 пакет пуст
func (b *BulkActionsController) Run(ctx *gin.Context) {
	action, ok := b.actions.Get(postTypeOf(ctx), ctx.Param("action"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": ErrUnknownAction.Error()})
		return
	}

	actor := mustActor(ctx)
	if !actor.Can(services.CapEditPosts) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": services.ErrorCodeInsufficientPermissions})
		return
	}

	tokens, err := decodeIDs(ctx.Request.Body)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrMalformedRequest.Error()})
		return
	}

	res, err := action.Run(ctx.Request.Context(), services.BatchRequest{Tokens: tokens, Actor: actor})
	if err != nil {
		if errors.Is(err, services.ErrNoItemsSubmitted) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": services.ErrorCodeNoPosts})
			return
		}
		_ = ctx.Error(fmt.Errorf("run bulk action: %w", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusOK, bulkActionResponse{
		Updated:  res.Updated,
		Errors:   res.Errors,
		Messages: b.notices.Summarize(res.Errors),
	})
}

// Handle обрабатывает POST /admin/bulk-action из формы списка записей.
//
// Поля формы: action, post_type, post[] (идентификаторы), redirect_to.
// Всегда отвечает редиректом 303 на redirect_to (только относительный путь), дополняя его
// параметрами bulk_updated, bulk_error и bulk_has_errors. Чужое действие не меняет адрес.
// Подробности ошибок сохраняются в сводку пользователя и читаются через GET /admin/notices.
func (b *BulkActionsController) Handle(ctx *gin.Context) {
	redirectTo := safeRedirect(ctx.PostForm("redirect_to"))
	postType := ctx.DefaultPostForm("post_type", models.DefaultPostType)

	action, ok := b.actions.Get(postType, ctx.PostForm("action"))
	if !ok {
		ctx.Redirect(http.StatusSeeOther, redirectTo)
		return
	}

	actor := mustActor(ctx)
	if !actor.Can(services.CapEditPosts) {
		ctx.Redirect(http.StatusSeeOther, withQuery(redirectTo, url.Values{
			QueryError: {services.ErrorCodeInsufficientPermissions},
		}))
		return
	}

	tokens := append(ctx.PostFormArray("post[]"), ctx.PostFormArray("post")...)
	res, err := action.Run(ctx.Request.Context(), services.BatchRequest{Tokens: tokens, Actor: actor})
	if err != nil {
		if errors.Is(err, services.ErrNoItemsSubmitted) {
			ctx.Redirect(http.StatusSeeOther, withQuery(redirectTo, url.Values{
				QueryError: {services.ErrorCodeNoPosts},
			}))
			return
		}
		_ = ctx.Error(fmt.Errorf("run bulk action: %w", err))
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	params := url.Values{QueryUpdated: {strconv.Itoa(res.Updated)}}
	if len(res.Errors) > 0 {
		if storeErr := b.notices.Store(ctx.Request.Context(), actor.ID, res.Errors); storeErr != nil {
			_ = ctx.Error(storeErr)
		} else {
			params.Set(QueryHasErrors, "1")
		}
	}
	ctx.Redirect(http.StatusSeeOther, withQuery(redirectTo, params))
}

// decodeIDs читает {"ids": [...]} и приводит элементы к строковым токенам.
// Пустое тело равнозначно пустому списку.
func decodeIDs(body io.Reader) ([]string, error) {
	var req struct {
		IDs []any `json:"ids"`
	}
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode ids: %w", err)
	}

	tokens := make([]string, 0, len(req.IDs))
	for i, raw := range req.IDs {
		switch v := raw.(type) {
		case string:
			tokens = append(tokens, v)
		case json.Number:
			tokens = append(tokens, v.String())
		default:
			return nil, fmt.Errorf("ids[%d] has type %T: %w", i, raw, ErrMalformedRequest)
		}
	}
	return tokens, nil
}

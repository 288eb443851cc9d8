package services

import (
	"slices"

	"github.com/fsdevblog/bulkmeta/internal/models"
)

// Role роль пользователя админки.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
	RoleAuthor        Role = "author"
	RoleContributor   Role = "contributor"
	RoleSubscriber    Role = "subscriber"
)

// Capability право, проверяемое для роли.
type Capability string

const (
	CapEditPosts          Capability = "edit_posts"
	CapEditOthersPosts    Capability = "edit_others_posts"
	CapEditPublishedPosts Capability = "edit_published_posts"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdministrator: {CapEditPosts, CapEditOthersPosts, CapEditPublishedPosts},
	RoleEditor:        {CapEditPosts, CapEditOthersPosts, CapEditPublishedPosts},
	RoleAuthor:        {CapEditPosts, CapEditPublishedPosts},
	RoleContributor:   {CapEditPosts},
	RoleSubscriber:    {},
}

// ParseRole проверяет, что роль известна.
func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	_, ok := roleCapabilities[r]
	return r, ok
}

// Actor пользователь, от имени которого выполняется действие.
type Actor struct {
	ID   uint `json:"id"`
	Role Role `json:"role"`
}

// Can проверяет наличие права у роли пользователя.
func (a Actor) Can(c Capability) bool {
	return slices.Contains(roleCapabilities[a.Role], c)
}

// RoleAccess проверяет права на конкретную запись с учетом владельца и статуса.
type RoleAccess struct{}

// CanEdit Чужие записи требуют edit_others_posts, опубликованные - edit_published_posts.
func (RoleAccess) CanEdit(actor Actor, post *models.Post) bool {
	if post == nil || !actor.Can(CapEditPosts) {
		return false
	}
	if post.AuthorID != actor.ID && !actor.Can(CapEditOthersPosts) {
		return false
	}
	if post.Status == models.PostStatusPublish && !actor.Can(CapEditPublishedPosts) {
		return false
	}
	return true
}

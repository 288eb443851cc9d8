package services

import (
	"testing"

	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("editor")
	assert.True(t, ok)
	assert.Equal(t, RoleEditor, r)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)
}

func TestRoleAccess_CanEdit(t *testing.T) {
	own := &models.Post{ID: 1, AuthorID: 10, Status: models.PostStatusDraft}
	ownPublished := &models.Post{ID: 2, AuthorID: 10, Status: models.PostStatusPublish}
	others := &models.Post{ID: 3, AuthorID: 11, Status: models.PostStatusDraft}

	tests := []struct {
		role Role
		post *models.Post
		want bool
	}{
		{role: RoleAdministrator, post: others, want: true},
		{role: RoleEditor, post: others, want: true},
		{role: RoleEditor, post: ownPublished, want: true},
		{role: RoleAuthor, post: own, want: true},
		{role: RoleAuthor, post: ownPublished, want: true},
		{role: RoleAuthor, post: others, want: false},
		{role: RoleContributor, post: own, want: true},
		{role: RoleContributor, post: ownPublished, want: false},
		{role: RoleContributor, post: others, want: false},
		{role: RoleSubscriber, post: own, want: false},
		{role: Role("unknown"), post: own, want: false},
		{role: RoleAdministrator, post: nil, want: false},
	}
	for _, tt := range tests {
		name := string(tt.role)
		if tt.post != nil {
			name += "/" + string(tt.post.Status)
		}
		t.Run(name, func(t *testing.T) {
			actor := Actor{ID: 10, Role: tt.role}
			assert.Equal(t, tt.want, RoleAccess{}.CanEdit(actor, tt.post))
		})
	}
}

func TestActor_Can(t *testing.T) {
	assert.True(t, Actor{Role: RoleContributor}.Can(CapEditPosts))
	assert.False(t, Actor{Role: RoleContributor}.Can(CapEditOthersPosts))
	assert.False(t, Actor{Role: RoleSubscriber}.Can(CapEditPosts))
}

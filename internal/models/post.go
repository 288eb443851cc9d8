package models

import "time"

// PostStatus статус публикации записи.
type PostStatus string

// Статусы записей.
const (
	PostStatusPublish PostStatus = "publish"
	PostStatusDraft   PostStatus = "draft"
	PostStatusPending PostStatus = "pending"
	PostStatusPrivate PostStatus = "private"
)

// DefaultPostType тип записи по умолчанию.
const DefaultPostType = "post"

// Post структура модели хранения записи (поста, страницы, товара).
type Post struct {
	ID        uint       `json:"id"        gorm:"primaryKey"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Title     string     `json:"title"     gorm:"size:512"`
	Type      string     `json:"type"      gorm:"size:20;index;default:post"`
	Status    PostStatus `json:"status"    gorm:"size:20;default:draft"`
	AuthorID  uint       `json:"authorID"  gorm:"index"`
}

// PostMeta произвольное поле метаданных записи. Пара (PostID, MetaKey) уникальна.
type PostMeta struct {
	ID        uint      `json:"id"        gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	PostID    uint      `json:"postID"    gorm:"uniqueIndex:idx_post_meta_post_key"`
	MetaKey   string    `json:"metaKey"   gorm:"size:255;uniqueIndex:idx_post_meta_post_key"`
	MetaValue string    `json:"metaValue" gorm:"type:text"`
}

// TableName имя таблицы метаданных.
func (PostMeta) TableName() string {
	return "post_meta"
}

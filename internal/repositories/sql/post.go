package sql

import (
	"context"

	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewPostRepo(db *gorm.DB, logger *logrus.Logger) *PostRepo {
	return &PostRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/post"),
	}
}

func (p *PostRepo) Create(ctx context.Context, post *models.Post) error {
	if post.Type == "" {
		post.Type = models.DefaultPostType
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	if err := p.db.WithContext(ctx).Create(post).Error; err != nil {
		p.logger.WithError(err).Errorf("failed to create post %+v", *post)
		return errors.Wrapf(convertErrorType(err), "failed to create post %d", post.ID)
	}
	return nil
}

func (p *PostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := p.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			p.logger.WithError(err).Errorf("failed to get post by id %d", id)
		}
		return nil, errors.Wrapf(convertErrorType(err), "failed to get post by id %d", id)
	}
	return &post, nil
}

// SetMeta делает upsert по уникальному индексу (post_id, meta_key).
// Запись того же значения эквивалентна отсутствию изменений.
func (p *PostRepo) SetMeta(ctx context.Context, postID uint, key, value string) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").First(&post, postID).Error; err != nil {
			return err //nolint:wrapcheck
		}

		meta := models.PostMeta{PostID: postID, MetaKey: key, MetaValue: value}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "meta_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"meta_value", "updated_at"}),
		}).Create(&meta).Error
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			p.logger.WithError(err).Errorf("failed to set meta `%s` for post %d", key, postID)
		}
		return errors.Wrapf(convertErrorType(err), "failed to set meta `%s` for post %d", key, postID)
	}
	return nil
}

func (p *PostRepo) GetMeta(ctx context.Context, postID uint, key string) (string, error) {
	var meta models.PostMeta
	err := p.db.WithContext(ctx).
		Where("post_id = ? AND meta_key = ?", postID, key).
		First(&meta).Error
	if err != nil {
		return "", errors.Wrapf(convertErrorType(err), "failed to get meta `%s` for post %d", key, postID)
	}
	return meta.MetaValue, nil
}

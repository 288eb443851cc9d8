package sql

import (
	"path/filepath"
	"testing"

	"github.com/fsdevblog/bulkmeta/internal/db"
	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/fsdevblog/bulkmeta/internal/repositories"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type PostRepoSuite struct {
	suite.Suite
	repo *PostRepo
}

func TestPostRepoSuite(t *testing.T) {
	suite.Run(t, new(PostRepoSuite))
}

func (s *PostRepoSuite) SetupTest() {
	conn, err := db.NewSQLite(filepath.Join(s.T().TempDir(), "test.sqlite"))
	s.Require().NoError(err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	s.repo = NewPostRepo(conn, logger)
}

func (s *PostRepoSuite) TestCreateAndGet() {
	ctx := s.T().Context()
	post := models.Post{Title: "Hello world", AuthorID: 7}
	s.Require().NoError(s.repo.Create(ctx, &post))
	s.NotZero(post.ID)

	got, err := s.repo.GetByID(ctx, post.ID)
	s.Require().NoError(err)
	s.Equal("Hello world", got.Title)
	s.Equal(models.DefaultPostType, got.Type)
	s.Equal(models.PostStatusDraft, got.Status)
	s.Equal(uint(7), got.AuthorID)

	_, err = s.repo.GetByID(ctx, 12345)
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *PostRepoSuite) TestSetMetaUpsert() {
	ctx := s.T().Context()
	post := models.Post{Title: "Hello"}
	s.Require().NoError(s.repo.Create(ctx, &post))

	s.Require().NoError(s.repo.SetMeta(ctx, post.ID, "rank_math_focus_keyword", "Hello"))
	s.Require().NoError(s.repo.SetMeta(ctx, post.ID, "rank_math_focus_keyword", "Hello"))
	s.Require().NoError(s.repo.SetMeta(ctx, post.ID, "rank_math_focus_keyword", "Hello again"))

	val, err := s.repo.GetMeta(ctx, post.ID, "rank_math_focus_keyword")
	s.Require().NoError(err)
	s.Equal("Hello again", val)

	var count int64
	s.Require().NoError(s.repo.db.Model(&models.PostMeta{}).Where("post_id = ?", post.ID).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PostRepoSuite) TestSetMetaMissingPost() {
	err := s.repo.SetMeta(s.T().Context(), 999, "rank_math_focus_keyword", "x")
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

package services_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/bulkmeta/internal/db"
	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/fsdevblog/bulkmeta/internal/repositories"
	"github.com/fsdevblog/bulkmeta/internal/repositories/memstore"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/fsdevblog/bulkmeta/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const metaKey = services.DefaultFocusKeywordMetaKey

var editor = services.Actor{ID: 1, Role: services.RoleEditor}

type FocusKeywordSuite struct {
	suite.Suite
	repo     *memstore.PostRepo
	assigner *services.BulkMetaAssigner
}

func TestFocusKeywordSuite(t *testing.T) {
	suite.Run(t, new(FocusKeywordSuite))
}

func (s *FocusKeywordSuite) SetupTest() {
	s.repo = memstore.NewPostRepo(db.NewMemStorage())
	s.assigner = services.NewFocusKeywordAssigner(
		metaKey, s.repo, s.repo, services.RoleAccess{}, services.SanitizeTitle, services.WithLogger(quietLogger()),
	)
}

func (s *FocusKeywordSuite) createPost(post models.Post) models.Post {
	s.Require().NoError(s.repo.Create(s.T().Context(), &post))
	return post
}

func (s *FocusKeywordSuite) run(actor services.Actor, tokens ...string) services.BatchResult {
	res, err := s.assigner.Run(s.T().Context(), services.BatchRequest{Tokens: tokens, Actor: actor})
	s.Require().NoError(err)
	return res
}

func (s *FocusKeywordSuite) keyword(id uint) string {
	val, err := s.repo.GetMeta(s.T().Context(), id, metaKey)
	s.Require().NoError(err)
	return val
}

func (s *FocusKeywordSuite) TestSetsSanitizedTitle() {
	post := s.createPost(models.Post{Title: "  <b>Best</b>\tcoffee   grinders  "})

	res := s.run(editor, strconv.Itoa(int(post.ID)))

	s.Equal(1, res.Updated)
	s.Empty(res.Errors)
	s.Equal("Best coffee grinders", s.keyword(post.ID))
}

func (s *FocusKeywordSuite) TestIdempotence() {
	a := s.createPost(models.Post{Title: "First"})
	b := s.createPost(models.Post{Title: "Second"})
	tokens := []string{strconv.Itoa(int(a.ID)), strconv.Itoa(int(b.ID))}

	first := s.run(editor, tokens...)
	second := s.run(editor, tokens...)

	s.Equal(2, first.Updated)
	s.Equal(first.Updated, second.Updated)
	s.Empty(second.Errors)
}

func (s *FocusKeywordSuite) TestDuplicateSuppression() {
	post := s.createPost(models.Post{ID: 5, Title: "Five"})

	res := s.run(editor, "5", "5", "5")

	s.Equal(1, res.Updated)
	s.Empty(res.Errors)
	s.Equal("Five", s.keyword(post.ID))
}

func (s *FocusKeywordSuite) TestMalformedTokensFiltered() {
	s.createPost(models.Post{ID: 7, Title: "Seven"})

	res := s.run(editor, "abc", "-3", "0", "7")

	s.Equal(1, res.Updated)
	s.Empty(res.Errors)
}

func (s *FocusKeywordSuite) TestEmptyTitleRejected() {
	tests := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "whitespace", title: " \t\n "},
		{name: "tags only", title: "<script>alert(1)</script>"},
	}
	for i, tt := range tests {
		s.Run(tt.name, func() {
			post := s.createPost(models.Post{ID: uint(100 + i), Title: tt.title})

			res := s.run(editor, strconv.Itoa(int(post.ID)))

			s.Equal(0, res.Updated)
			s.Require().Len(res.Errors, 1)
			s.Equal(services.ErrorKindValidationFailed, res.Errors[0].Kind)
			s.Equal(services.ItemID(post.ID), res.Errors[0].ItemID)

			_, err := s.repo.GetMeta(s.T().Context(), post.ID, metaKey)
			s.Require().ErrorIs(err, repositories.ErrNotFound)
		})
	}
}

func (s *FocusKeywordSuite) TestPermissionPartitioning() {
	author := services.Actor{ID: 10, Role: services.RoleAuthor}
	s.createPost(models.Post{ID: 1, Title: "Mine", AuthorID: 10})
	s.createPost(models.Post{ID: 2, Title: "Theirs", AuthorID: 11})

	res := s.run(author, "1", "2")

	s.Equal(1, res.Updated)
	s.Equal([]services.ItemError{
		{ItemID: 2, Kind: services.ErrorKindPermissionDenied, Detail: "Theirs"},
	}, res.Errors)
}

func (s *FocusKeywordSuite) TestNotFound() {
	res := s.run(editor, "999")

	s.Equal(0, res.Updated)
	s.Equal([]services.ItemError{
		{ItemID: 999, Kind: services.ErrorKindNotFound, Detail: "item not found"},
	}, res.Errors)
	s.Equal("Post ID 999 not found", res.Errors[0].Message())
}

func (s *FocusKeywordSuite) TestEmptyBatchSignal() {
	for _, tokens := range [][]string{nil, {}} {
		res, err := s.assigner.Run(s.T().Context(), services.BatchRequest{Tokens: tokens, Actor: editor})
		s.Require().ErrorIs(err, services.ErrNoItemsSubmitted)
		s.Equal(services.BatchResult{}, res)
	}
}

func (s *FocusKeywordSuite) TestAllTokensMalformed() {
	res := s.run(editor, "abc", "0")

	s.Equal(0, res.Updated)
	s.Empty(res.Errors)
}

func (s *FocusKeywordSuite) TestOrderPreservation() {
	contributor := services.Actor{ID: 20, Role: services.RoleContributor}
	s.createPost(models.Post{ID: 1, Title: "ok", AuthorID: 20})
	s.createPost(models.Post{ID: 2, Title: "", AuthorID: 20})
	s.createPost(models.Post{ID: 3, Title: "published", AuthorID: 20, Status: models.PostStatusPublish})
	tokens := []string{"1", "2", "3", "4"}

	base := s.run(contributor, tokens...)
	s.Equal(1, base.Updated)
	s.Require().Len(base.Errors, 3)

	for range 5 {
		shuffled := append([]string(nil), tokens...)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		res := s.run(contributor, shuffled...)
		s.Equal(base.Updated, res.Updated)
		s.ElementsMatch(base.Errors, res.Errors)

		// порядок ошибок повторяет порядок первого вхождения
		var want []services.ItemID
		for _, t := range shuffled {
			if t != "1" {
				id, _ := services.ParseItemID(t)
				want = append(want, id)
			}
		}
		got := make([]services.ItemID, 0, len(res.Errors))
		for _, e := range res.Errors {
			got = append(got, e.ItemID)
		}
		s.Equal(want, got)
	}
}

func (s *FocusKeywordSuite) TestAccountingInvariant() {
	s.createPost(models.Post{ID: 1, Title: "ok"})
	s.createPost(models.Post{ID: 2, Title: ""})

	tokens := []string{"1", "x", "2", "1", "3", "-1", " 2 "}
	res := s.run(editor, tokens...)

	s.Equal(len(services.ParseItemIDs(tokens)), res.Updated+len(res.Errors))
}

func TestBulkMetaAssigner_Collaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	posts := mocks.NewMockPostReader(ctrl)
	writer := mocks.NewMockMetaWriter(ctrl)
	access := mocks.NewMockPermissionChecker(ctrl)
	recorder := mocks.NewMockOutcomeRecorder(ctrl)

	assigner := services.NewBulkMetaAssigner(
		"copy_title", "custom_key", posts, writer, access,
		func(p *models.Post) string { return p.Title },
		services.WithLogger(quietLogger()),
		services.WithOutcomeRecorder(recorder),
	)

	ctx := context.Background()
	posts.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Post{ID: 1, Title: "one"}, nil)
	posts.EXPECT().GetByID(gomock.Any(), uint(2)).Return(&models.Post{ID: 2, Title: "two"}, nil)
	posts.EXPECT().GetByID(gomock.Any(), uint(3)).Return(nil, errors.New("connection reset"))
	access.EXPECT().CanEdit(editor, gomock.Any()).Return(true).Times(2)
	writer.EXPECT().SetMeta(gomock.Any(), uint(1), "custom_key", "one").Return(nil)
	writer.EXPECT().SetMeta(gomock.Any(), uint(2), "custom_key", "two").Return(repositories.ErrUnknown)
	recorder.EXPECT().RecordOutcome("copy_title", "updated")
	recorder.EXPECT().RecordOutcome("copy_title", string(services.ErrorKindWriteFailed))
	recorder.EXPECT().RecordOutcome("copy_title", string(services.ErrorKindNotFound))

	res, err := assigner.Run(ctx, services.BatchRequest{Tokens: []string{"1", "2", "3"}, Actor: editor})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, []services.ItemError{
		{ItemID: 2, Kind: services.ErrorKindWriteFailed, Detail: "two"},
		{ItemID: 3, Kind: services.ErrorKindNotFound, Detail: "item not found"},
	}, res.Errors)
	assert.Equal(t, "Failed to update: two", res.Errors[0].Message())
}

func TestBulkMetaAssigner_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPostRepository(ctrl)
	assigner := services.NewFocusKeywordAssigner(
		"", repo, repo, services.RoleAccess{}, services.SanitizeTitle, services.WithLogger(quietLogger()),
	)
	assert.Equal(t, services.DefaultFocusKeywordMetaKey, assigner.MetaKey())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := assigner.Run(ctx, services.BatchRequest{Tokens: []string{"1"}, Actor: editor})
	require.ErrorIs(t, err, context.Canceled)
}

// BenchmarkFocusKeyword_Different_Sizes тестирует производительность с разными размерами пакетов.
func BenchmarkFocusKeyword_Different_Sizes(b *testing.B) {
	sizes := []int{1, 10, 100, 1000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			repo := memstore.NewPostRepo(db.NewMemStorage())
			assigner := services.NewFocusKeywordAssigner(
				metaKey, repo, repo, services.RoleAccess{}, services.SanitizeTitle, services.WithLogger(quietLogger()),
			)

			ctx := context.Background()
			tokens := make([]string, size)
			for i := range size {
				post := models.Post{Title: gofakeit.Sentence(5)}
				if err := repo.Create(ctx, &post); err != nil {
					b.Fatal(err)
				}
				tokens[i] = strconv.Itoa(int(post.ID))
			}

			b.ResetTimer()

			for range b.N {
				if _, err := assigner.Run(ctx, services.BatchRequest{Tokens: tokens, Actor: editor}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

package fixtures

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fsdevblog/bulkmeta/internal/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PostFixture запись с метаданными в файле начальных данных.
type PostFixture struct {
	ID       uint              `yaml:"id"`
	Title    string            `yaml:"title"`
	Type     string            `yaml:"type"`
	Status   models.PostStatus `yaml:"status"`
	AuthorID uint              `yaml:"author_id"`
	Meta     map[string]string `yaml:"meta"`
}

// File файл начальных данных.
type File struct {
	Posts []PostFixture `yaml:"posts"`
}

// Seeder хранилище, в которое загружаются начальные данные.
type Seeder interface {
	Create(ctx context.Context, post *models.Post) error
	SetMeta(ctx context.Context, postID uint, key, value string) error
}

// Load читает YAML с начальными данными.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, errors.Wrap(err, "decode fixtures")
	}
	return &f, nil
}

// LoadFile читает YAML с начальными данными из файла.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open fixtures `%s`", path)
	}
	defer fh.Close()

	return Load(fh)
}

// Seed сохраняет записи и их метаданные в хранилище.
//
// Параметры:
//   - ctx: контекст выполнения
//   - store: хранилище записей
//   - f: начальные данные
//
// Возвращает:
//   - int: число созданных записей
//   - error: ошибка первой неудачной записи
func Seed(ctx context.Context, store Seeder, f *File) (int, error) {
	for i, pf := range f.Posts {
		post := models.Post{
			ID:       pf.ID,
			Title:    pf.Title,
			Type:     pf.Type,
			Status:   pf.Status,
			AuthorID: pf.AuthorID,
		}
		if err := store.Create(ctx, &post); err != nil {
			return i, fmt.Errorf("seed post #%d: %w", i, err)
		}

		keys := make([]string, 0, len(pf.Meta))
		for k := range pf.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := store.SetMeta(ctx, post.ID, k, pf.Meta[k]); err != nil {
				return i, fmt.Errorf("seed meta `%s` of post %d: %w", k, post.ID, err)
			}
		}
	}
	return len(f.Posts), nil
}

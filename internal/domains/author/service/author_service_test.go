package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

type fakeAuthorRepo struct {
	authors       map[uuid.UUID]*model.Author
	articleCounts map[uuid.UUID]int
	deleted       []uuid.UUID
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		authors:       make(map[uuid.UUID]*model.Author),
		articleCounts: make(map[uuid.UUID]int),
	}
}

func (f *fakeAuthorRepo) GetAll(ctx context.Context) ([]model.Author, error) {
	var out []model.Author
	for _, a := range f.authors {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	a.ID = uuid.New()
	f.authors[a.ID] = a
	return a, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	if _, ok := f.authors[a.ID]; !ok {
		return nil, model.ErrAuthorNotFound
	}
	f.authors[a.ID] = a
	return a, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}
	delete(f.authors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAuthorRepo) ArticleCount(ctx context.Context, authorID uuid.UUID) (int, error) {
	return f.articleCounts[authorID], nil
}

func seedAuthor(repo *fakeAuthorRepo) *model.Author {
	nameAr := "سارة"
	a := &model.Author{
		ID:     uuid.New(),
		Email:  "sara@tasami.co",
		Name:   "Sara",
		NameAr: &nameAr,
		Role:   "Engineer",
		Bio:    "Builds things",
	}
	repo.authors[a.ID] = a
	return a
}

func TestAuthorDeleteGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("delete rejected when author has articles", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		a := seedAuthor(repo)
		repo.articleCounts[a.ID] = 3

		err := NewAuthorService(repo).Delete(ctx, a.ID)
		assert.ErrorIs(t, err, model.ErrAuthorHasArticles)
		assert.Empty(t, repo.deleted)
	})

	t.Run("delete succeeds with no articles", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		a := seedAuthor(repo)

		require.NoError(t, NewAuthorService(repo).Delete(ctx, a.ID))
		assert.Equal(t, []uuid.UUID{a.ID}, repo.deleted)
	})
}

func TestAuthorLocalization(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	a := seedAuthor(repo)
	svc := NewAuthorService(repo)

	t.Run("arabic variant wins", func(t *testing.T) {
		got, err := svc.GetByID(ctx, a.ID, i18n.Arabic)
		require.NoError(t, err)
		assert.Equal(t, "سارة", got.Name)
		// role has no arabic variant, falls back
		assert.Equal(t, "Engineer", got.Role)
	})

	t.Run("english returns base", func(t *testing.T) {
		got, err := svc.GetByID(ctx, a.ID, i18n.English)
		require.NoError(t, err)
		assert.Equal(t, "Sara", got.Name)
	})
}

func TestAuthorCreateValidation(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{
		Email: "not-an-email",
		Name:  "X",
	})
	require.Error(t, err)
}

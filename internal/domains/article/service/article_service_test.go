package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/model"
	authormodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
	categorymodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

// fakeArticleRepo is an in-memory RepositoryInterface implementation
// keyed by article id, with slug uniqueness enforced on writes.
type fakeArticleRepo struct {
	articles map[uuid.UUID]*model.Article
	author   *authormodel.Author
	category *categorymodel.Category
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[uuid.UUID]*model.Article),
		author:   &authormodel.Author{ID: uuid.New(), Name: "Sara", Email: "sara@tasami.co"},
		category: &categorymodel.Category{ID: uuid.New(), Slug: "tech", Name: "Tech"},
	}
}

func (f *fakeArticleRepo) attach(a *model.Article) *model.Article {
	copied := *a
	copied.Author = f.author
	copied.Category = f.category
	return &copied
}

func (f *fakeArticleRepo) List(ctx context.Context, filter model.ListFilter) ([]model.Article, int64, error) {
	var matched []model.Article
	for _, a := range f.articles {
		if filter.Status != model.StatusAll && a.Status != filter.Status {
			continue
		}
		if filter.Featured != nil && a.Featured != *filter.Featured {
			continue
		}
		matched = append(matched, *f.attach(a))
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeArticleRepo) GetBySlugAndIncrementViews(ctx context.Context, slug string) (*model.Article, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			a.Views++
			return f.attach(a), nil
		}
	}
	return nil, model.ErrArticleNotFound
}

func (f *fakeArticleRepo) GetBySlugOrID(ctx context.Context, key string) (*model.Article, error) {
	for _, a := range f.articles {
		if a.Slug == key {
			return f.attach(a), nil
		}
	}
	if id, err := uuid.Parse(key); err == nil {
		if a, ok := f.articles[id]; ok {
			return f.attach(a), nil
		}
	}
	return nil, model.ErrArticleNotFound
}

func (f *fakeArticleRepo) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	if taken, _ := f.ExistsBySlug(ctx, a.Slug); taken {
		return nil, model.ErrSlugTaken
	}
	copied := *a
	copied.ID = uuid.New()
	copied.CreatedAt = time.Now()
	f.articles[copied.ID] = &copied
	return f.attach(&copied), nil
}

func (f *fakeArticleRepo) Update(ctx context.Context, a *model.Article) (*model.Article, error) {
	current, ok := f.articles[a.ID]
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	updated := *a
	updated.Views = current.Views
	f.articles[a.ID] = &updated
	return f.attach(&updated), nil
}

func (f *fakeArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.articles[id]; !ok {
		return model.ErrArticleNotFound
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeArticleRepo) CountStaleDrafts(ctx context.Context, before time.Time) (int, error) {
	return 0, nil
}

func validCreateRequest(repo *fakeArticleRepo, title string) *model.CreateArticleRequest {
	return &model.CreateArticleRequest{
		Title:      title,
		Excerpt:    "An excerpt that is comfortably longer than the fifty character minimum.",
		Content:    "Body content that clears the one hundred character minimum for an article body, with room to spare for good measure.",
		AuthorID:   repo.author.ID,
		CategoryID: repo.category.ID,
	}
}

func TestCreateGeneratesUniqueSlug(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	first, err := svc.Create(ctx, validCreateRequest(repo, "My Post"))
	require.NoError(t, err)
	assert.Equal(t, "my-post", first.Slug)

	second, err := svc.Create(ctx, validCreateRequest(repo, "My Post"))
	require.NoError(t, err)
	assert.Equal(t, "my-post-1", second.Slug)

	third, err := svc.Create(ctx, validCreateRequest(repo, "My Post"))
	require.NoError(t, err)
	assert.Equal(t, "my-post-2", third.Slug)
}

func TestCreateDefaults(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest(repo, "Future of AI"))
	require.NoError(t, err)
	assert.Equal(t, "future-of-ai", created.Slug)
	assert.Equal(t, model.StatusDraft, created.Status)
	assert.False(t, created.Featured)
	assert.Equal(t, []string{}, created.Tags)
	// creation returns the raw bilingual record with relations populated
	require.NotNil(t, created.Author)
	require.NotNil(t, created.Category)
}

func TestCreateValidation(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	req := validCreateRequest(repo, "Hey")
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err, "title below 5 chars must fail")

	req = validCreateRequest(repo, "A valid title")
	req.Excerpt = "too short"
	_, err = svc.Create(context.Background(), req)
	require.Error(t, err)
}

func TestViewIncrementExactlyOncePerFetch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(ctx, validCreateRequest(repo, "Future of AI"))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		got, err := svc.GetBySlug(ctx, created.Slug, i18n.English)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.Views)
	}

	// a miss must not increment anything
	_, err = svc.GetBySlug(ctx, "does-not-exist", i18n.English)
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	got, err := svc.GetBySlug(ctx, created.Slug, i18n.Arabic)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Views)
	// no arabic variant set, title falls back to the english base
	assert.Equal(t, "Future of AI", got.Title)
}

func TestDualLookupForUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(ctx, validCreateRequest(repo, "My Post"))
	require.NoError(t, err)

	newExcerpt := "A replacement excerpt that is also comfortably longer than fifty characters."

	bySlug, err := svc.Update(ctx, created.Slug, &model.UpdateArticleRequest{Excerpt: &newExcerpt})
	require.NoError(t, err)

	byID, err := svc.Update(ctx, created.ID.String(), &model.UpdateArticleRequest{Excerpt: &newExcerpt})
	require.NoError(t, err)
	assert.Equal(t, bySlug.ID, byID.ID)
	assert.Equal(t, newExcerpt, byID.Excerpt)

	_, err = svc.Update(ctx, "no-such-key", &model.UpdateArticleRequest{Excerpt: &newExcerpt})
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	assert.ErrorIs(t, svc.Delete(ctx, created.Slug), model.ErrArticleNotFound)
}

func TestUpdateNeverRegeneratesSlug(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	created, err := svc.Create(ctx, validCreateRequest(repo, "My Post"))
	require.NoError(t, err)

	newTitle := "A Completely Different Title"
	updated, err := svc.Update(ctx, created.Slug, &model.UpdateArticleRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "my-post", updated.Slug)
	assert.Equal(t, newTitle, updated.Title)

	// explicit slug in the patch does change it
	explicit := "chosen-slug"
	updated, err = svc.Update(ctx, created.Slug, &model.UpdateArticleRequest{Slug: &explicit})
	require.NoError(t, err)
	assert.Equal(t, "chosen-slug", updated.Slug)
}

func TestListStatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeArticleRepo()
	svc := NewArticleService(repo)

	published := validCreateRequest(repo, "Published Post")
	published.Status = model.StatusPublished
	_, err := svc.Create(ctx, published)
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest(repo, "Draft Post"))
	require.NoError(t, err)

	// default filter only returns published
	items, total, err := svc.List(ctx, model.ListFilter{}, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "published-post", items[0].Slug)

	// "all" sentinel disables the status filter
	_, total, err = svc.List(ctx, model.ListFilter{Status: model.StatusAll}, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

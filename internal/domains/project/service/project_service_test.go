package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/model"
	projectcategorymodel "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]*model.Project
	category *projectcategorymodel.ProjectCategory
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[uuid.UUID]*model.Project),
		category: &projectcategorymodel.ProjectCategory{ID: uuid.New(), Slug: "fintech", Name: "Fintech"},
	}
}

func (f *fakeProjectRepo) attach(p *model.Project) *model.Project {
	copied := *p
	copied.Category = f.category
	copied.Technologies = append([]model.Technology(nil), p.Technologies...)
	copied.Results = append([]model.Result(nil), p.Results...)
	copied.ContentBlocks = append([]model.ContentBlock(nil), p.ContentBlocks...)
	if p.Testimonial != nil {
		t := *p.Testimonial
		copied.Testimonial = &t
	}
	return &copied
}

func (f *fakeProjectRepo) List(ctx context.Context, categorySlug string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.projects {
		if categorySlug != "" && f.category.Slug != categorySlug {
			continue
		}
		out = append(out, *f.attach(p))
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, model.ErrProjectNotFound
	}
	return f.attach(p), nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	copied := *p
	copied.ID = uuid.New()
	if copied.Testimonial != nil {
		copied.Testimonial.ID = uuid.New()
	}
	f.projects[copied.ID] = &copied
	return f.attach(&copied), nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p *model.Project) error {
	current, ok := f.projects[p.ID]
	if !ok {
		return model.ErrProjectNotFound
	}
	updated := *p
	updated.Technologies = current.Technologies
	updated.Results = current.Results
	updated.Testimonial = current.Testimonial
	updated.ContentBlocks = current.ContentBlocks
	f.projects[p.ID] = &updated
	return nil
}

func (f *fakeProjectRepo) ReplaceTechnologies(ctx context.Context, projectID uuid.UUID, techs []model.Technology) error {
	p, ok := f.projects[projectID]
	if !ok {
		return model.ErrProjectNotFound
	}
	p.Technologies = techs
	return nil
}

func (f *fakeProjectRepo) ReplaceResults(ctx context.Context, projectID uuid.UUID, results []model.Result) error {
	p, ok := f.projects[projectID]
	if !ok {
		return model.ErrProjectNotFound
	}
	p.Results = results
	return nil
}

func (f *fakeProjectRepo) ReplaceContentBlocks(ctx context.Context, projectID uuid.UUID, blocks []model.ContentBlock) error {
	p, ok := f.projects[projectID]
	if !ok {
		return model.ErrProjectNotFound
	}
	p.ContentBlocks = blocks
	return nil
}

func (f *fakeProjectRepo) UpsertTestimonial(ctx context.Context, projectID uuid.UUID, t model.Testimonial) error {
	p, ok := f.projects[projectID]
	if !ok {
		return model.ErrProjectNotFound
	}
	if p.Testimonial != nil {
		id := p.Testimonial.ID
		p.Testimonial = &t
		p.Testimonial.ID = id
		return nil
	}
	p.Testimonial = &t
	p.Testimonial.ID = uuid.New()
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return model.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

func validProjectRequest(repo *fakeProjectRepo) *model.CreateProjectRequest {
	return &model.CreateProjectRequest{
		Title:       "Payments Platform",
		Description: "A payments platform for regional merchants.",
		Challenge:   "Legacy settlement took days.",
		Solution:    "Real-time ledger with instant settlement.",
		Status:      model.StatusActive,
		CategoryID:  repo.category.ID,
		Technologies: []model.TechnologyInput{
			{Name: "Go"}, {Name: "PostgreSQL"}, {Name: "Redis"},
		},
	}
}

func TestReplaceAllTechnologies(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	created, err := svc.Create(ctx, validProjectRequest(repo))
	require.NoError(t, err)
	require.Len(t, created.Technologies, 3)

	// present-but-empty list replaces with nothing
	empty := []model.TechnologyInput{}
	updated, err := svc.Update(ctx, created.ID, &model.UpdateProjectRequest{Technologies: &empty})
	require.NoError(t, err)
	assert.Len(t, updated.Technologies, 0)

	// absent field leaves the collection untouched
	two := []model.TechnologyInput{{Name: "Go"}, {Name: "Kafka"}}
	_, err = svc.Update(ctx, created.ID, &model.UpdateProjectRequest{Technologies: &two})
	require.NoError(t, err)

	title := "Renamed Platform"
	updated, err = svc.Update(ctx, created.ID, &model.UpdateProjectRequest{Title: &title})
	require.NoError(t, err)
	assert.Len(t, updated.Technologies, 2)
	assert.Equal(t, "Renamed Platform", updated.Title)
}

func TestTestimonialUpsert(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	created, err := svc.Create(ctx, validProjectRequest(repo))
	require.NoError(t, err)
	require.Nil(t, created.Testimonial)

	// first supplied testimonial creates exactly one row
	updated, err := svc.Update(ctx, created.ID, &model.UpdateProjectRequest{
		Testimonial: &model.TestimonialInput{Quote: "Transformed our business.", Author: "Omar", Position: "CTO"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Testimonial)
	firstID := updated.Testimonial.ID

	// a second payload updates in place, same identity
	updated, err = svc.Update(ctx, created.ID, &model.UpdateProjectRequest{
		Testimonial: &model.TestimonialInput{Quote: "Even better now.", Author: "Omar", Position: "CTO"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Testimonial)
	assert.Equal(t, firstID, updated.Testimonial.ID)
	assert.Equal(t, "Even better now.", updated.Testimonial.Quote)

	// an empty testimonial object is a no-op
	updated, err = svc.Update(ctx, created.ID, &model.UpdateProjectRequest{
		Testimonial: &model.TestimonialInput{},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Testimonial)
	assert.Equal(t, "Even better now.", updated.Testimonial.Quote)
}

func TestProjectLocalization(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	req := validProjectRequest(repo)
	ar := "منصة المدفوعات"
	emptyAr := ""
	req.TitleAr = &ar
	req.DescriptionAr = &emptyAr
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID, i18n.Arabic)
	require.NoError(t, err)
	assert.Equal(t, "منصة المدفوعات", got.Title)
	// empty-string variant never overrides the base value
	assert.Equal(t, "A payments platform for regional merchants.", got.Description)
	require.NotNil(t, got.Category)

	got, err = svc.GetByID(ctx, created.ID, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "Payments Platform", got.Title)
}

func TestDeleteMissingProject(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

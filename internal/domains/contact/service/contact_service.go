package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/xuri/excelize/v2"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/repository"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/logger"
)

type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdateStatusRequest) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context) (*excelize.File, error)
}

type contactService struct {
	repo        repository.RepositoryInterface
	asynqClient *asynq.Client
}

func NewContactService(repo repository.RepositoryInterface, asynqClient *asynq.Client) ServiceInterface {
	return &contactService{repo: repo, asynqClient: asynqClient}
}

// Create persists the message and enqueues an admin notification. A
// failed enqueue is logged but never fails the submission, the visitor
// already did their part.
func (s *contactService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.enqueueNotification(ctx, created)
	return created, nil
}

func (s *contactService) enqueueNotification(ctx context.Context, m *model.ContactMessage) {
	if s.asynqClient == nil {
		return
	}

	payload, err := json.Marshal(shared.ContactNotifyPayload{
		MessageID: m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Service:   m.Service,
	})
	if err != nil {
		logger.Error("failed to marshal contact notification payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeContactNotify, payload)
	if _, err := s.asynqClient.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		logger.Error("failed to enqueue contact notification", err)
	}
}

func (s *contactService) List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Status == "" {
		filter.Status = model.StatusAll
	}
	return s.repo.List(ctx, filter)
}

func (s *contactService) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdateStatusRequest) (*model.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Export builds an xlsx workbook of every message for the admin inbox
// download.
func (s *contactService) Export(ctx context.Context) (*excelize.File, error) {
	messages, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Messages"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Company", "Service", "Budget", "Message", "Status", "Received"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, m := range messages {
		values := []interface{}{
			m.Name, m.Email, deref(m.Company), m.Service, deref(m.Budget),
			m.Message, m.Status, m.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build export cell: %w", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

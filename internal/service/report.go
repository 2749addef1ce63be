package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// ReportService appends immutable moderation records. There is no workflow
// beyond the append; every record stays pending.
type ReportService interface {
	// Submit appends a report filed by the current user.
	Submit(ctx context.Context, targetType, targetID, reason, description string) (*model.Report, error)
	// List returns all reports in submission order.
	List(ctx context.Context) ([]*model.Report, error)
}

type ReportServiceImpl struct {
	reports repository.ReportRepository
	session repository.SessionRepository
	users   repository.UserRepository
}

// NewReportService constructs ReportService.
func NewReportService(reports repository.ReportRepository, session repository.SessionRepository, users repository.UserRepository) *ReportServiceImpl {
	return &ReportServiceImpl{reports: reports, session: session, users: users}
}

// Submit validates and appends; the record is immutable afterwards.
func (s *ReportServiceImpl) Submit(ctx context.Context, targetType, targetID, reason, description string) (*model.Report, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(targetType) == "" || strings.TrimSpace(targetID) == "" || strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: target and reason are required", errs.ErrEmptyField)
	}
	return s.reports.Append(ctx, &model.Report{
		TargetType:  targetType,
		TargetID:    targetID,
		ReporterID:  me.ID,
		Reason:      reason,
		Description: description,
		Status:      model.ReportStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
}

// List returns all reports in submission order.
func (s *ReportServiceImpl) List(ctx context.Context) ([]*model.Report, error) {
	return s.reports.List(ctx)
}

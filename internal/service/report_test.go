package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
)

func newReportFixture(t *testing.T) (*ReportServiceImpl, *fakeSession, uuid.UUID) {
	t.Helper()
	users := &fakeUsers{}
	session := &fakeSession{}
	id := uuid.Must(uuid.NewV4())
	if err := users.Create(context.Background(), &model.User{ID: id, Username: "alice"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_ = session.Set(context.Background(), id)
	return NewReportService(&fakeReports{}, session, users), session, id
}

func TestReport_Submit(t *testing.T) {
	t.Parallel()
	svc, _, me := newReportFixture(t)
	ctx := context.Background()

	r, err := svc.Submit(ctx, "post", "42", "spam", "repeated link drops")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if r.ID == 0 || r.ReporterID != me || r.Status != model.ReportStatusPending {
		t.Fatalf("report state wrong: %+v", r)
	}

	// Descriptions are optional.
	if _, err := svc.Submit(ctx, "user", "bob", "harassment", ""); err != nil {
		t.Fatalf("Submit without description: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].TargetID != "42" {
		t.Fatalf("want submission order, got %+v", list)
	}
}

func TestReport_SubmitValidation(t *testing.T) {
	t.Parallel()
	svc, session, _ := newReportFixture(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name       string
		targetType string
		targetID   string
		reason     string
	}{
		{"blank type", " ", "42", "spam"},
		{"blank target", "post", "", "spam"},
		{"blank reason", "post", "42", "  "},
	} {
		if _, err := svc.Submit(ctx, tc.targetType, tc.targetID, tc.reason, ""); !errors.Is(err, errs.ErrEmptyField) {
			t.Fatalf("%s: want ErrEmptyField, got %v", tc.name, err)
		}
	}

	if err := session.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := svc.Submit(ctx, "post", "42", "spam", ""); !errors.Is(err, errs.ErrNoSession) {
		t.Fatalf("signed out: want ErrNoSession, got %v", err)
	}
}

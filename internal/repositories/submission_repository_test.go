package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newMockRepo(t *testing.T) (SubmissionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return SubmissionRepository{DB: db}, mock
}

func sampleSubmission() models.Submission {
	return models.Submission{
		DraftID:     "draft-1",
		Name:        "Nimal",
		Phone:       "0771234567",
		From:        "Colombo",
		To:          "Kandy",
		Date:        "2026-03-11",
		Time:        "08:30 PM",
		Bus:         "Night Express",
		MaleSeats:   1,
		FemaleSeats: 1,
		Total:       5000,
		Message:     "msg",
		WhatsAppURL: "https://wa.me/94771234567?text=msg",
		CreatedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestSubmissionInsert(t *testing.T) {
	repo, mock := newMockRepo(t)
	s := sampleSubmission()

	mock.ExpectExec("INSERT INTO booking_submissions").
		WithArgs(s.DraftID, s.Name, s.Phone, s.From, s.To, s.Date, s.Time,
			s.Bus, s.MaleSeats, s.FemaleSeats, s.Total, false, nil,
			s.Message, s.WhatsAppURL, s.CreatedAt).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Insert(context.Background(), s)
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmissionInsertDuplicateDraft(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO booking_submissions").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	if _, err := repo.Insert(context.Background(), sampleSubmission()); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSubmissionInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO booking_submissions").WillReturnError(sql.ErrConnDone)

	if _, err := repo.Insert(context.Background(), sampleSubmission()); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestSubmissionGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cols := []string{"id", "draft_id", "passenger_name", "passenger_phone", "route_from", "route_to", "trip_date", "trip_time",
		"bus_service", "male_seats", "female_seats", "total", "has_slip", "slip_digest", "message", "whatsapp_url", "created_at"}
	mock.ExpectQuery("FROM booking_submissions").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			7, "draft-1", "Nimal", "0771234567", "Colombo", "Kandy",
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), "08:30 PM",
			"Night Express", 1, 1, 5000, true, "abc123", "msg", "https://wa.me/1", created,
		))

	s, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if s.Date != "2026-03-11" || s.SlipDigest != "abc123" || !s.HasSlip || s.Total != 5000 {
		t.Fatalf("unexpected submission: %+v", s)
	}
}

func TestSubmissionGetByIDMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM booking_submissions").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), 9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("information_schema\\.tables").WithArgs("booking_submissions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booking_submissions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	mock.ExpectQuery("information_schema\\.tables").WithArgs("booking_submissions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("booking_submissions"))
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema (existing): %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	intdb "busbooking/internal/db"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

const submissionsDDL = `
CREATE TABLE IF NOT EXISTS booking_submissions (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	draft_id VARCHAR(36) NOT NULL,
	passenger_name VARCHAR(255) NOT NULL,
	passenger_phone VARCHAR(20) NOT NULL,
	route_from VARCHAR(100) NOT NULL,
	route_to VARCHAR(100) NOT NULL,
	trip_date DATE NOT NULL,
	trip_time VARCHAR(20) NOT NULL,
	bus_service VARCHAR(100) NOT NULL,
	male_seats INT NOT NULL DEFAULT 0,
	female_seats INT NOT NULL DEFAULT 0,
	total BIGINT NOT NULL DEFAULT 0,
	has_slip TINYINT(1) NOT NULL DEFAULT 0,
	slip_digest VARCHAR(64) NULL,
	message TEXT NOT NULL,
	whatsapp_url TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_draft (draft_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// SubmissionRepository stores bookings that passed validation and were handed off.
type SubmissionRepository struct {
	DB *sql.DB
}

// EnsureSchema creates booking_submissions when it is missing.
func (r SubmissionRepository) EnsureSchema(ctx context.Context) error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(ctx, r.DB, "booking_submissions") {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, submissionsDDL)
	return err
}

func (r SubmissionRepository) Insert(ctx context.Context, s models.Submission) (int64, error) {
	if r.DB == nil {
		return 0, domain.InternalError{Msg: "db not available"}
	}
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO booking_submissions
		(draft_id, passenger_name, passenger_phone, route_from, route_to, trip_date, trip_time,
		 bus_service, male_seats, female_seats, total, has_slip, slip_digest, message, whatsapp_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.DraftID, s.Name, s.Phone, s.From, s.To, s.Date, s.Time,
		s.Bus, s.MaleSeats, s.FemaleSeats, s.Total, s.HasSlip, intdb.NullIfEmpty(s.SlipDigest),
		s.Message, s.WhatsAppURL, s.CreatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "submission", Msg: "draft already submitted", Err: err}
		}
		return 0, domain.InternalError{Msg: "failed to save submission", Err: err}
	}
	return res.LastInsertId()
}

func (r SubmissionRepository) GetByID(ctx context.Context, id int64) (models.Submission, error) {
	if id <= 0 {
		return models.Submission{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if r.DB == nil {
		return models.Submission{}, domain.InternalError{Msg: "db not available"}
	}

	var (
		s      models.Submission
		digest sql.NullString
		date   time.Time
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, draft_id, passenger_name, passenger_phone, route_from, route_to, trip_date, trip_time,
		       bus_service, male_seats, female_seats, total, has_slip, slip_digest, message, whatsapp_url, created_at
		FROM booking_submissions
		WHERE id = ?
		LIMIT 1
	`, id).Scan(
		&s.ID, &s.DraftID, &s.Name, &s.Phone, &s.From, &s.To, &date, &s.Time,
		&s.Bus, &s.MaleSeats, &s.FemaleSeats, &s.Total, &s.HasSlip, &digest, &s.Message, &s.WhatsAppURL, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Submission{}, domain.NotFoundError{Resource: "submission", Err: err}
		}
		return models.Submission{}, domain.InternalError{Msg: "failed to load submission", Err: err}
	}
	s.Date = date.Format(models.DateLayout)
	if digest.Valid {
		s.SlipDigest = digest.String
	}
	return s, nil
}

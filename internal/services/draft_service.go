package services

import (
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/google/uuid"
)

const (
	// MaxSeatsPerKind bounds each of the male/female seat counters.
	MaxSeatsPerKind = 10
	// MaxPhoneDigits is the stored phone length after sanitizing.
	MaxPhoneDigits = 10
)

// DraftService owns the field-level update operations of a booking draft.
type DraftService struct {
	Store     *repositories.DraftStore
	Catalog   domain.Catalog
	Clock     utils.Clock
	RequestID string
}

// NewDraft returns a draft with defaults: date is tomorrow, everything else empty.
func NewDraft(id string, clock utils.Clock) models.BookingDraft {
	now := clock.Now()
	return models.BookingDraft{
		ID:        id,
		Date:      utils.Tomorrow(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s DraftService) Create() (models.BookingDraft, error) {
	d := NewDraft(uuid.NewString(), s.Clock)
	if err := s.Store.Create(d); err != nil {
		return models.BookingDraft{}, err
	}
	utils.LogEvent(s.RequestID, "draft", "create", "draft_id="+d.ID)
	return d, nil
}

func (s DraftService) Get(id string) (models.BookingDraft, error) {
	return s.Store.Get(id)
}

// View attaches the derived total to a draft.
func (s DraftService) View(d models.BookingDraft) models.DraftView {
	return models.DraftView{BookingDraft: d, Total: Total(s.Catalog, d)}
}

// Apply performs every present field of u against the draft. Either all
// fields are applied or, on the first rejection, none are.
func (s DraftService) Apply(id string, u models.DraftUpdate) (models.BookingDraft, error) {
	return s.Store.Update(id, func(d *models.BookingDraft) error {
		if u.Name != nil {
			d.Name = *u.Name
		}
		if u.Phone != nil {
			SetPhone(d, *u.Phone)
		}
		if u.From != nil {
			if err := s.setCity(&d.From, "from", *u.From); err != nil {
				return err
			}
		}
		if u.To != nil {
			if err := s.setCity(&d.To, "to", *u.To); err != nil {
				return err
			}
		}
		if u.Date != nil {
			if err := s.setDate(d, *u.Date); err != nil {
				return err
			}
		}
		if u.Bus != nil {
			SelectBus(d, s.Catalog, *u.Bus)
		}
		d.UpdatedAt = s.Clock.Now()
		return nil
	})
}

func (s DraftService) UpdateName(id, name string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{Name: &name})
}

func (s DraftService) UpdatePhone(id, raw string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{Phone: &raw})
}

func (s DraftService) UpdateRoute(id, from, to string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{From: &from, To: &to})
}

func (s DraftService) UpdateFrom(id, city string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{From: &city})
}

func (s DraftService) UpdateTo(id, city string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{To: &city})
}

func (s DraftService) UpdateDate(id, date string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{Date: &date})
}

func (s DraftService) SelectBus(id, name string) (models.BookingDraft, error) {
	return s.Apply(id, models.DraftUpdate{Bus: &name})
}

// UpdateSeats adds delta to one seat counter, clamped to [0, MaxSeatsPerKind].
func (s DraftService) UpdateSeats(id string, kind domain.SeatKind, delta int) (models.BookingDraft, error) {
	return s.Store.Update(id, func(d *models.BookingDraft) error {
		if err := AdjustSeats(d, kind, delta); err != nil {
			return err
		}
		d.UpdatedAt = s.Clock.Now()
		return nil
	})
}

// Discard drops the draft; called by the submit caller once the hand-off succeeded.
func (s DraftService) Discard(id string) {
	s.Store.Delete(id)
	utils.LogEvent(s.RequestID, "draft", "discard", "draft_id="+id)
}

func (s DraftService) setCity(dst *string, field, city string) error {
	city = strings.TrimSpace(city)
	if city != "" && !s.Catalog.HasCity(city) {
		n := domain.NoticeUnknownCity
		return domain.ValidationError{Field: field, Msg: fmt.Sprintf("unknown city %q", city), Notice: &n}
	}
	*dst = city
	return nil
}

func (s DraftService) setDate(d *models.BookingDraft, raw string) error {
	t, err := utils.ParseDate(raw)
	if err != nil {
		n := domain.NoticeInvalidDate
		return domain.ValidationError{Field: "date", Msg: "date must be YYYY-MM-DD", Notice: &n, Err: err}
	}
	if t.Before(utils.StartOfDay(s.Clock.Now())) {
		return domain.Reject("date", domain.NoticeInvalidDate)
	}
	d.Date = utils.FormatDate(t)
	return nil
}

// SetPhone stores only the digits of raw, truncated to MaxPhoneDigits.
// Invalid characters are dropped, never rejected.
func SetPhone(d *models.BookingDraft, raw string) {
	d.Phone = utils.Truncate(utils.DigitsOnly(raw), MaxPhoneDigits)
}

// SelectBus stores the service name and resynchronizes Time with the
// service table. An unknown name clears Time.
func SelectBus(d *models.BookingDraft, cat domain.Catalog, name string) {
	d.Bus = name
	if svc, ok := cat.Service(name); ok {
		d.Time = svc.Time
		return
	}
	d.Time = ""
}

// AdjustSeats applies delta to the counter selected by kind.
func AdjustSeats(d *models.BookingDraft, kind domain.SeatKind, delta int) error {
	switch kind {
	case domain.SeatMale:
		d.MaleSeats = ClampSeats(d.MaleSeats, delta)
	case domain.SeatFemale:
		d.FemaleSeats = ClampSeats(d.FemaleSeats, delta)
	default:
		return domain.ValidationError{Field: "kind", Msg: "kind must be male or female"}
	}
	return nil
}

// ClampSeats returns clamp(current+delta, 0, MaxSeatsPerKind) without overflowing.
func ClampSeats(current, delta int) int {
	switch {
	case delta > MaxSeatsPerKind:
		return MaxSeatsPerKind
	case delta < -MaxSeatsPerKind:
		return 0
	}
	n := current + delta
	if n < 0 {
		return 0
	}
	if n > MaxSeatsPerKind {
		return MaxSeatsPerKind
	}
	return n
}

package services

import (
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// Total is price × (male + female) for the selected service, or 0 when the
// draft has no service or the name is not in the table.
func Total(cat domain.Catalog, d models.BookingDraft) int64 {
	svc, ok := cat.Service(d.Bus)
	if !ok {
		return 0
	}
	return svc.Price * int64(d.Seats())
}

package domain

// Severity grades a Notice shown to the user.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notice is the user-facing title/body pair attached to a rejection.
type Notice struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Severity Severity `json:"severity"`
}

// SeatKind selects which seat counter an update touches.
type SeatKind string

const (
	SeatMale   SeatKind = "male"
	SeatFemale SeatKind = "female"
)

// ParseSeatKind accepts the two known kinds (case-sensitive, as sent by the form).
func ParseSeatKind(s string) (SeatKind, bool) {
	switch SeatKind(s) {
	case SeatMale, SeatFemale:
		return SeatKind(s), true
	default:
		return "", false
	}
}

// Notices raised by the booking form.
var (
	NoticeFileTooLarge = Notice{
		Title:    "File too large",
		Body:     "Payment slip must be 3 MB or smaller.",
		Severity: SeverityError,
	}
	NoticeUnsupportedImage = Notice{
		Title:    "Unsupported file",
		Body:     "Payment slip must be a JPEG, PNG, WebP, GIF, BMP or TIFF image of normal size.",
		Severity: SeverityError,
	}
	NoticeSeatsRequired = Notice{
		Title:    "Seat selection required",
		Body:     "Please select at least one seat.",
		Severity: SeverityWarning,
	}
	NoticeInvalidPhone = Notice{
		Title:    "Invalid phone number",
		Body:     "Please enter a valid phone number.",
		Severity: SeverityWarning,
	}
	NoticeUnknownCity = Notice{
		Title:    "Unknown city",
		Body:     "Please pick a city from the list.",
		Severity: SeverityWarning,
	}
	NoticeInvalidDate = Notice{
		Title:    "Invalid travel date",
		Body:     "Travel date must be today or later.",
		Severity: SeverityWarning,
	}
)

package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultSlipMaxBytes is the payment slip size cap (3 MB).
	DefaultSlipMaxBytes int64 = 3 * 1024 * 1024
	// MaxSlipPixels bounds width × height before a slip is fully decoded.
	MaxSlipPixels = 40_000_000
)

// SlipLoader turns an uploaded payment slip into a data URL stored on the draft.
//
// A load is split into BeginLoad (size check, claims a generation), Decode and
// Commit. Commit only writes when its generation is still the newest, so when
// two uploads overlap the one selected last wins regardless of which decode
// finishes first.
type SlipLoader struct {
	Store     *repositories.DraftStore
	MaxBytes  int64
	Clock     utils.Clock
	RequestID string
}

func (l SlipLoader) maxBytes() int64 {
	if l.MaxBytes > 0 {
		return l.MaxBytes
	}
	return DefaultSlipMaxBytes
}

// BeginLoad rejects files over the cap without touching the draft. Otherwise
// it claims and returns the next slip generation.
func (l SlipLoader) BeginLoad(id string, size int64) (uint64, error) {
	if size > l.maxBytes() {
		utils.LogWarn(l.RequestID, "slip", "begin", fmt.Sprintf("draft_id=%s size=%d over cap", id, size))
		return 0, domain.Reject("paymentSlip", domain.NoticeFileTooLarge)
	}
	var gen uint64
	_, err := l.Store.Update(id, func(d *models.BookingDraft) error {
		d.SlipGeneration++
		gen = d.SlipGeneration
		return nil
	})
	return gen, err
}

// Decode reads at most the cap from r, checks that the bytes are an image and
// returns them as a data URL.
func (l SlipLoader) Decode(r io.Reader) (string, error) {
	limit := l.maxBytes()
	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", domain.InternalError{Msg: "failed to read slip", Err: err}
	}
	if int64(len(raw)) > limit {
		return "", domain.Reject("paymentSlip", domain.NoticeFileTooLarge)
	}
	if len(raw) == 0 {
		return "", domain.Reject("paymentSlip", domain.NoticeUnsupportedImage)
	}

	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", domain.Reject("paymentSlip", domain.NoticeUnsupportedImage)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSlipPixels {
		return "", domain.Reject("paymentSlip", domain.NoticeUnsupportedImage)
	}
	if _, err := imaging.Decode(bytes.NewReader(raw)); err != nil {
		return "", domain.Reject("paymentSlip", domain.NoticeUnsupportedImage)
	}

	return "data:" + baseMIME(mime.String()) + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Commit stores dataURL when gen is still the newest generation. It reports
// whether the write was applied.
func (l SlipLoader) Commit(id string, gen uint64, dataURL string) (bool, error) {
	applied := false
	_, err := l.Store.Update(id, func(d *models.BookingDraft) error {
		if d.SlipGeneration != gen {
			return nil
		}
		d.PaymentSlip = dataURL
		d.UpdatedAt = l.Clock.Now()
		applied = true
		return nil
	})
	if err == nil && !applied {
		utils.LogEvent(l.RequestID, "slip", "commit", fmt.Sprintf("draft_id=%s gen=%d superseded", id, gen))
	}
	return applied, err
}

// Load runs BeginLoad, Decode and Commit. On any rejection the previous slip
// stays in place.
func (l SlipLoader) Load(ctx context.Context, id string, size int64, r io.Reader) (models.BookingDraft, bool, error) {
	gen, err := l.BeginLoad(id, size)
	if err != nil {
		return models.BookingDraft{}, false, err
	}
	dataURL, err := l.Decode(r)
	if err != nil {
		return models.BookingDraft{}, false, err
	}
	if err := ctx.Err(); err != nil {
		return models.BookingDraft{}, false, err
	}
	applied, err := l.Commit(id, gen, dataURL)
	if err != nil {
		return models.BookingDraft{}, false, err
	}
	d, err := l.Store.Get(id)
	if err == nil {
		utils.LogEvent(l.RequestID, "slip", "load", fmt.Sprintf("draft_id=%s gen=%d applied=%t", id, gen, applied))
	}
	return d, applied, err
}

// Remove clears the slip and bumps the generation so an upload still being
// decoded cannot bring it back.
func (l SlipLoader) Remove(id string) (models.BookingDraft, error) {
	return l.Store.Update(id, func(d *models.BookingDraft) error {
		d.SlipGeneration++
		d.PaymentSlip = ""
		d.UpdatedAt = l.Clock.Now()
		return nil
	})
}

// baseMIME strips parameters such as "; charset=binary".
func baseMIME(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}

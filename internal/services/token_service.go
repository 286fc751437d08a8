package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidDraftToken = errors.New("invalid draft token")

const (
	claimDraftID      = "draft_id"
	claimSubmissionID = "submission_id"
)

// DraftTokens issues and checks the bearer tokens that bind a client to its
// draft, and after submit to the stored submission.
type DraftTokens struct {
	Secret []byte
	TTL    time.Duration
}

func (t DraftTokens) ttl() time.Duration {
	if t.TTL > 0 {
		return t.TTL
	}
	return 24 * time.Hour
}

func (t DraftTokens) Issue(draftID string, now time.Time) (string, error) {
	return t.sign(claimDraftID, draftID, now)
}

// Verify returns the draft id carried by a valid token.
func (t DraftTokens) Verify(raw string) (string, error) {
	return t.claim(raw, claimDraftID)
}

// IssueSubmission signs a token that unlocks one stored submission.
func (t DraftTokens) IssueSubmission(submissionID int64, now time.Time) (string, error) {
	return t.sign(claimSubmissionID, strconv.FormatInt(submissionID, 10), now)
}

// VerifySubmission returns the submission id carried by a valid token, as
// the decimal string used in routes.
func (t DraftTokens) VerifySubmission(raw string) (string, error) {
	return t.claim(raw, claimSubmissionID)
}

func (t DraftTokens) sign(key, value string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		key:   value,
		"iat": now.Unix(),
		"exp": now.Add(t.ttl()).Unix(),
	})
	return token.SignedString(t.Secret)
}

func (t DraftTokens) claim(raw, key string) (string, error) {
	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return t.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return "", ErrInvalidDraftToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidDraftToken
	}
	v, _ := claims[key].(string)
	if v == "" {
		return "", ErrInvalidDraftToken
	}
	return v, nil
}

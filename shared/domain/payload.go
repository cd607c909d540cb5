package domain

import (
	"errors"
	"fmt"
)

// Payload is a request body as decoded from json, with the authenticated
// owner and route params merged in.
type Payload map[string]any

// String returns the value under key if it is a string, "" otherwise.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Subjects of payload errors.
const (
	SubjectAddThread     = "ADD_THREAD"
	SubjectAddComment    = "ADD_COMMENT"
	SubjectAddReply      = "ADD_REPLY"
	SubjectDeleteComment = "DELETE_COMMENT"
	SubjectDeleteReply   = "DELETE_REPLY"
	SubjectLikeComment   = "LIKE_COMMENT"
)

var (
	ErrNotMeetAuthentication    = errors.New("NOT_MEET_AUTHENTICATION_DATA")
	ErrNotContainNeededProperty = errors.New("NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNotMeetDataType          = errors.New("NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// PayloadError reports which entity or use case rejected a payload and why.
// Reason is always one of the Err* sentinels above.
type PayloadError struct {
	Subject string
	Reason  error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s.%s", e.Subject, e.Reason)
}

func (e *PayloadError) Unwrap() error {
	return e.Reason
}

// verifyPayload checks, in this order: owner present, every required key
// present, owner and required values are strings.
func verifyPayload(subject string, p Payload, required ...string) error {
	if isBlank(p[OwnerKey]) {
		return &PayloadError{Subject: subject, Reason: ErrNotMeetAuthentication}
	}
	for _, key := range required {
		if isBlank(p[key]) {
			return &PayloadError{Subject: subject, Reason: ErrNotContainNeededProperty}
		}
	}
	for _, key := range append([]string{OwnerKey}, required...) {
		if _, ok := p[key].(string); !ok {
			return &PayloadError{Subject: subject, Reason: ErrNotMeetDataType}
		}
	}
	return nil
}

// isBlank treats nil, zero values and empty strings as absent.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	}
	return false
}

package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/samdazain/forumapi-v2/shared/api"
	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
	"github.com/samdazain/forumapi-v2/shared/logger"
)

const (
	MissingAuthentication = "Missing authentication"
	InternalServerError   = "terjadi kegagalan pada server kami"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, api.Response{Status: api.StatusSuccess, Data: data})
}

func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, api.Response{Status: api.StatusFail, Message: message})
}

// WriteErrorAndStatusCode is the single place where errors become responses.
// Payload errors map to 401 (missing owner) or 400, ErrorWithStatusCode
// carries its own code, anything else is a 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var payloadErr *domain.PayloadError
	if errors.As(err, &payloadErr) {
		if errors.Is(err, domain.ErrNotMeetAuthentication) {
			WriteFail(w, http.StatusUnauthorized, MissingAuthentication)
			return
		}
		WriteFail(w, http.StatusBadRequest, PayloadErrorMessage(payloadErr))
		return
	}

	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		WriteFail(w, e.StatusCode, e.Message)
		return
	}

	logger.Log.Error("unhandled error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Response{Status: api.StatusError, Message: InternalServerError})
}

var payloadActions = map[string]string{
	domain.SubjectAddThread:     "tidak dapat membuat thread baru",
	domain.SubjectAddComment:    "tidak dapat membuat komentar baru",
	domain.SubjectAddReply:      "tidak dapat membuat balasan baru",
	domain.SubjectDeleteComment: "tidak dapat menghapus komentar",
	domain.SubjectDeleteReply:   "tidak dapat menghapus balasan",
	domain.SubjectLikeComment:   "tidak dapat menyukai komentar",
}

// PayloadErrorMessage renders a client-facing message for a payload error.
func PayloadErrorMessage(e *domain.PayloadError) string {
	action, ok := payloadActions[e.Subject]
	if !ok {
		action = "permintaan tidak dapat diproses"
	}
	switch {
	case errors.Is(e.Reason, domain.ErrNotContainNeededProperty):
		return action + " karena properti yang dibutuhkan tidak ada"
	case errors.Is(e.Reason, domain.ErrNotMeetDataType):
		return action + " karena tipe data tidak sesuai"
	default:
		return MissingAuthentication
	}
}

// DecodePayload reads an optional json object body. An empty body yields an
// empty payload so that validation, not decoding, reports missing fields.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	payload := domain.Payload{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		logger.Log.Debug("invalid json body", "error", err)
		return nil, internal_errors.BadRequest("Body is invalid json")
	}
	// a literal null decodes into a nil map
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}

func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return internal_errors.BadRequest("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("body failed validation", "error", err)
		return internal_errors.BadRequest("Required fields missing")
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samdazain/forumapi-v2/shared/domain"
	mw "github.com/samdazain/forumapi-v2/shared/middleware"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

const maxBodyBytes = 1 << 20

// readPayload decodes the optional json body and merges in the given route
// params and the authenticated owner. Route params and owner always win over
// body fields of the same name; an anonymous request gets an empty owner.
func readPayload(w http.ResponseWriter, r *http.Request, params ...string) (domain.Payload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		return nil, err
	}
	for _, key := range params {
		payload[key] = chi.URLParam(r, key)
	}
	payload[domain.OwnerKey] = mw.GetUserIdFromContext(r)
	return payload, nil
}

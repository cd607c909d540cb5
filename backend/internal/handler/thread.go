package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samdazain/forumapi-v2/shared/api"
	"github.com/samdazain/forumapi-v2/shared/domain"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.thread.Get(r.Context(), chi.URLParam(r, domain.ThreadIdKey))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}

package handler

import (
	"net/http"

	"github.com/samdazain/forumapi-v2/shared/api"
	"github.com/samdazain/forumapi-v2/shared/domain"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r, domain.ThreadIdKey, domain.CommentIdKey)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r, domain.ThreadIdKey, domain.CommentIdKey, domain.ReplyIdKey)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.reply.Delete(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

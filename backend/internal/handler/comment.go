package handler

import (
	"net/http"

	"github.com/samdazain/forumapi-v2/shared/api"
	"github.com/samdazain/forumapi-v2/shared/domain"
	"github.com/samdazain/forumapi-v2/shared/middleware/metrics"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r, domain.ThreadIdKey)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r, domain.ThreadIdKey, domain.CommentIdKey)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r, domain.ThreadIdKey, domain.CommentIdKey)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	liked, err := h.comment.ToggleLike(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.LikeToggled(liked)

	utils.WriteSuccess(w, http.StatusOK, nil)
}

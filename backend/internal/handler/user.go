package handler

import (
	"net/http"

	"github.com/samdazain/forumapi-v2/shared/api"
	"github.com/samdazain/forumapi-v2/shared/domain"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.user.Register(r.Context(), domain.RegisterUser{
		Username: body.Username,
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserResponse{AddedUser: added})
}

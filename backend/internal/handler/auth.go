package handler

import (
	"net/http"

	"github.com/samdazain/forumapi-v2/shared/api"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	tokens, err := h.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var body api.RefreshTokenRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.AccessTokenResponse{AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var body api.RefreshTokenRequest
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodyBytes), &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.Logout(r.Context(), body.RefreshToken); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

package api

import "github.com/samdazain/forumapi-v2/shared/domain"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope of every json response.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Request DTOs

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Response payloads, keyed the way clients expect under "data"

type AddedUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadView `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

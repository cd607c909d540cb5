package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string

	Username = string
	Password = string
)

// Keys of an incoming payload. Path params and the authenticated owner are
// injected under these names by the http layer.
const (
	OwnerKey     = "owner"
	ThreadIdKey  = "threadId"
	CommentIdKey = "commentId"
	ReplyIdKey   = "replyId"
	TitleKey     = "title"
	BodyKey      = "body"
	ContentKey   = "content"
)

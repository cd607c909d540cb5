package domain

import "time"

type AddComment struct {
	ThreadId ThreadId
	Content  string
	Owner    UserId
}

func NewAddComment(p Payload) (AddComment, error) {
	if err := verifyPayload(SubjectAddComment, p, ThreadIdKey, ContentKey); err != nil {
		return AddComment{}, err
	}
	return AddComment{
		ThreadId: p.String(ThreadIdKey),
		Content:  p.String(ContentKey),
		Owner:    p.String(OwnerKey),
	}, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentAction identifies a comment acted upon by its owner-to-be-checked:
// a delete or a like toggle.
type CommentAction struct {
	ThreadId  ThreadId
	CommentId CommentId
	Owner     UserId
}

func NewDeleteComment(p Payload) (CommentAction, error) {
	return newCommentAction(SubjectDeleteComment, p)
}

func NewLikeComment(p Payload) (CommentAction, error) {
	return newCommentAction(SubjectLikeComment, p)
}

func newCommentAction(subject string, p Payload) (CommentAction, error) {
	if err := verifyPayload(subject, p, ThreadIdKey, CommentIdKey); err != nil {
		return CommentAction{}, err
	}
	return CommentAction{
		ThreadId:  p.String(ThreadIdKey),
		CommentId: p.String(CommentIdKey),
		Owner:     p.String(OwnerKey),
	}, nil
}

// CommentRow is a stored comment joined with its author's username.
type CommentRow struct {
	Id       CommentId
	Content  string
	Date     time.Time
	Owner    UserId
	ThreadId ThreadId
	IsDelete bool
	Username Username
}

func (c CommentRow) Text() string    { return c.Content }
func (c CommentRow) IsDeleted() bool { return c.IsDelete }

type CommentView struct {
	Id        CommentId   `json:"id"`
	Username  Username    `json:"username"`
	Date      time.Time   `json:"date"`
	Content   string      `json:"content"`
	LikeCount int         `json:"likeCount"`
	Replies   []ReplyView `json:"replies"`
}

// View projects a comment with its like count and replies. Deleted comments
// and replies have their content masked.
func (c CommentRow) View(likeCount int, replies []ReplyRow) CommentView {
	views := make([]ReplyView, 0, len(replies))
	for _, r := range replies {
		views = append(views, r.View())
	}
	return CommentView{
		Id:        c.Id,
		Username:  c.Username,
		Date:      c.Date,
		Content:   Masked(c, CommentDeletedMarker),
		LikeCount: likeCount,
		Replies:   views,
	}
}

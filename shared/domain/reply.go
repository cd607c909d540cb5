package domain

import "time"

// AddReply carries the thread id only for the existence check done before
// construction; it is not required by the entity itself.
type AddReply struct {
	ThreadId  ThreadId
	CommentId CommentId
	Content   string
	Owner     UserId
}

func NewAddReply(p Payload) (AddReply, error) {
	if err := verifyPayload(SubjectAddReply, p, CommentIdKey, ContentKey); err != nil {
		return AddReply{}, err
	}
	return AddReply{
		ThreadId:  p.String(ThreadIdKey),
		CommentId: p.String(CommentIdKey),
		Content:   p.String(ContentKey),
		Owner:     p.String(OwnerKey),
	}, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type ReplyAction struct {
	ThreadId  ThreadId
	CommentId CommentId
	ReplyId   ReplyId
	Owner     UserId
}

func NewDeleteReply(p Payload) (ReplyAction, error) {
	if err := verifyPayload(SubjectDeleteReply, p, CommentIdKey, ReplyIdKey); err != nil {
		return ReplyAction{}, err
	}
	return ReplyAction{
		ThreadId:  p.String(ThreadIdKey),
		CommentId: p.String(CommentIdKey),
		ReplyId:   p.String(ReplyIdKey),
		Owner:     p.String(OwnerKey),
	}, nil
}

type ReplyRow struct {
	Id        ReplyId
	Content   string
	Date      time.Time
	Owner     UserId
	CommentId CommentId
	IsDelete  bool
	Username  Username
}

func (r ReplyRow) Text() string    { return r.Content }
func (r ReplyRow) IsDeleted() bool { return r.IsDelete }

type ReplyView struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

func (r ReplyRow) View() ReplyView {
	return ReplyView{
		Id:       r.Id,
		Content:  Masked(r, ReplyDeletedMarker),
		Date:     r.Date,
		Username: r.Username,
	}
}

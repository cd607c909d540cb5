package domain

import "time"

type AddThread struct {
	Title string
	Body  string
	Owner UserId
}

func NewAddThread(p Payload) (AddThread, error) {
	if err := verifyPayload(SubjectAddThread, p, TitleKey, BodyKey); err != nil {
		return AddThread{}, err
	}
	return AddThread{
		Title: p.String(TitleKey),
		Body:  p.String(BodyKey),
		Owner: p.String(OwnerKey),
	}, nil
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// ThreadDetail is a thread header joined with its author's username.
type ThreadDetail struct {
	Id       ThreadId  `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

// ThreadView is the assembled thread returned by a thread read.
type ThreadView struct {
	ThreadDetail
	Comments []CommentView `json:"comments"`
}

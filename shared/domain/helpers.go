package domain

const (
	CommentDeletedMarker = "**komentar telah dihapus**"
	ReplyDeletedMarker   = "**balasan telah dihapus**"
)

// SoftDeletable is any content-bearing row that is flagged rather than
// removed on delete.
type SoftDeletable interface {
	Text() string
	IsDeleted() bool
}

// Masked returns the row's text, or marker if the row is deleted.
func Masked(row SoftDeletable, marker string) string {
	return MaskDeleted(row.Text(), row.IsDeleted(), marker)
}

func MaskDeleted(content string, deleted bool, marker string) string {
	if deleted {
		return marker
	}
	return content
}

package domain

// NoteStatus represents the lifecycle bucket a note sits in.
type NoteStatus string

const (
	StatusBin     NoteStatus = "bin"
	StatusPin     NoteStatus = "pin"
	StatusUnpin   NoteStatus = "unpin"
	StatusArchive NoteStatus = "archive"
	StatusOther   NoteStatus = "other"
)

var noteStatuses = map[NoteStatus]struct{}{
	StatusBin:     {},
	StatusPin:     {},
	StatusUnpin:   {},
	StatusArchive: {},
	StatusOther:   {},
}

// Valid reports whether s is one of the recognised note statuses.
func (s NoteStatus) Valid() bool {
	_, ok := noteStatuses[s]
	return ok
}

// Note is owned by a user; every mutation is scoped by the (id, username)
// pair, which doubles as the ownership check.
type Note struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Username    string     `json:"username"`
	Status      NoteStatus `json:"status"`
	UserID      int64      `json:"user_id"`
}

package handler

// Request bodies keep the field set of the original wire contract. The
// username / user id fields are validated for presence but the acting
// identity always comes from the session (see middleware.Session).

type listNotesRequest struct {
	Username string `json:"username" validate:"required"`
	ID       int64  `json:"id"       validate:"required"`
}

type addNoteRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Username    string `json:"username"`
	Status      string `json:"status"`
	UserID      int64  `json:"user_id"`
}

type updateNoteRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ID          int64  `json:"id"          validate:"required"`
	Username    string `json:"username"    validate:"required"`
}

type updateStatusRequest struct {
	Username string `json:"username"`
	Status   string `json:"status" validate:"required,oneof=bin pin unpin archive other"`
	ID       int64  `json:"id"`
}

type deleteNoteRequest struct {
	Username string `json:"username" validate:"required"`
	ID       int64  `json:"id"       validate:"required"`
}

type noteResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

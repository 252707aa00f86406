package handler

// errorResponse mirrors the envelope produced by the central error handler,
// for the few responses handlers render directly.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	ID       int64  `json:"id"       validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message    string `json:"message"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

type checkSessionResponse struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	ID         int64  `json:"id"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

type notLoggedInResponse struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}

type logoutResponse struct {
	Message     string `json:"message"`
	IsLoggedOut bool   `json:"isLoggedOut"`
}

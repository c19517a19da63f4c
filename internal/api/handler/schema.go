package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// redirectResponse carries the outcome of a decision that ends in a redirect:
// optional user-facing feedback plus the destination path the client should
// navigate to. The core never renders HTML; the client does.
type redirectResponse struct {
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// pageResponse describes a form entry point (login, signup) to the client.
type pageResponse struct {
	Page string `json:"page"`
}

// --- Request / Response types ---

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=ADMIN CUSTOMER"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN CUSTOMER"`
}

type userResponse struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type loginResponse struct {
	Token    string       `json:"token"`
	User     userResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

type dashboardResponse struct {
	Dashboard string         `json:"dashboard"`
	User      *userResponse  `json:"user,omitempty"`
	Users     []userResponse `json:"users,omitempty"`
}

type auditEntry struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	TargetID  int64     `json:"target_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type auditTrailResponse struct {
	Events []auditEntry `json:"events"`
}

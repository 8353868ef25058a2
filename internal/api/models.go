package api

import "go.mongodb.org/mongo-driver/v2/bson"

// IssueTokenRequest is the body of POST /api/jwt.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueTokenResponse carries the signed credential. The same credential is
// also set as an http-only cookie; the body copy serves non-browser clients.
type IssueTokenResponse struct {
	Token string `json:"token"`
}

// LogoutResponse is the body of POST /api/logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// RegisterResponse is the body of POST /api/users.
// InsertedID is null when the user already existed.
type RegisterResponse struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

// TaskListResponse is the body of GET /api/tasks.
type TaskListResponse struct {
	Tasks      []bson.M `json:"tasks"`
	TasksCount int64    `json:"tasksCount"`
}

// CreateTaskResponse is the body of POST /api/tasks.
type CreateTaskResponse struct {
	InsertedID string `json:"insertedId"`
}

// UpdateTaskResponse is the body of PUT /api/tasks/{id}.
type UpdateTaskResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteTaskResponse is the body of DELETE /api/tasks/{id}.
type DeleteTaskResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

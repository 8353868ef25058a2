// Package api provides the HTTP handlers and router for the task-tracking
// API: credential issuance, user registration, owner-scoped task CRUD, and
// status statistics.
package api

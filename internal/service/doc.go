// Package service implements the application's business operations on top
// of the store layer: idempotent user registration, owner-scoped task CRUD
// with paginated listing, and per-status task statistics.
package service

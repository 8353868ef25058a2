// Package store defines the persistence interfaces for users and tasks and
// provides their document-store implementations.
//
// Documents are intentionally untyped (bson.M): users and tasks carry
// arbitrary caller-supplied payloads, and the store only governs the handful
// of fields named in the domain package (ownership, status, timestamps).
package store

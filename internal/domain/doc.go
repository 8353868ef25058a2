// Package domain defines the core business entities, field names, and errors
// shared by the store, service, and API layers.
package domain

package types

// Status is a type for the lifecycle status of a resource in the database.
// This is used to track soft deletion and to determine if a resource should
// be included in queries.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

package model

import "github.com/google/uuid"

// TagID identifies a tag in the surrounding application.
type TagID = uuid.UUID

// Tag is a user-defined label. Name is stored lowercase.
type Tag struct {
	ID   TagID  `json:"id"`
	Name string `json:"name"`
}

package model

import "github.com/google/uuid"

// ProjectID identifies a project in the surrounding application.
type ProjectID = uuid.UUID

// Project is a node in the user's project tree. ParentID is nil for
// top-level projects.
type Project struct {
	ID       ProjectID  `json:"id"`
	Name     string     `json:"name"`
	ParentID *ProjectID `json:"parent_id,omitempty"`
}

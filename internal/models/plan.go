package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Camera describes a virtual camera pose: focal length plus a 3D position
// and a quaternion rotation.
type Camera struct {
	FocalLength float64    `json:"focal_length"`
	Position    [3]float64 `json:"position"`
	Rotation    [4]float64 `json:"rotation"`
}

// Value marshals the camera into JSON for the plans.camera JSONB column.
func (c Camera) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan unmarshals the camera from the JSONB column.
func (c *Camera) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported camera column type %T", src)
	}
}

// PlanDB represents a shoot plan record in the database
type PlanDB struct {
	PlanID      uuid.UUID `json:"id" db:"plan_id"`            // Primary key, assigned at creation
	Name        string    `json:"name" db:"name"`             // Plan name
	Description *string   `json:"description" db:"description"`
	StartTime   time.Time `json:"start_time" db:"start_time"` // Shoot start, strictly future at write time
	Camera      Camera    `json:"camera" db:"camera"`         // Camera pose, stored as JSONB
	TilesetURL  string    `json:"tileset_url" db:"tileset_url"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`       // Owner, immutable after creation
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PlanCreate carries the client-supplied fields of a new plan. The owner
// and the identifier come from the authenticated caller and the service.
type PlanCreate struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	Camera      Camera    `json:"camera"`
	TilesetURL  string    `json:"tileset_url"`
}

// PlanPatch carries the optional fields of a partial plan update. Nil
// fields keep their stored values. Ownership is not patchable: the type
// has no user id field.
type PlanPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	Camera      *Camera    `json:"camera,omitempty"`
	TilesetURL  *string    `json:"tileset_url,omitempty"`
}

// Apply merges the patch over an existing plan and returns the result.
// It is a pure function: the receiver and the argument are not mutated.
func (p PlanPatch) Apply(plan PlanDB) PlanDB {
	if p.Name != nil {
		plan.Name = *p.Name
	}
	if p.Description != nil {
		plan.Description = p.Description
	}
	if p.StartTime != nil {
		plan.StartTime = *p.StartTime
	}
	if p.Camera != nil {
		plan.Camera = *p.Camera
	}
	if p.TilesetURL != nil {
		plan.TilesetURL = *p.TilesetURL
	}
	return plan
}

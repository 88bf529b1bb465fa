package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// ErrorResponse is the JSON error body shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// UserResponse is the public view of a user, never carrying the hash
// swagger:model UserResponse
type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
}

// UserDetailResponse extends UserResponse with server timestamps
// swagger:model UserDetailResponse
type UserDetailResponse struct {
	UserResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		UserName: user.UserName,
		Email:    user.Email,
	}
}

// PlanResponse is the serialized plan record
// swagger:model PlanResponse
type PlanResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	StartTime   time.Time     `json:"start_time"`
	Camera      models.Camera `json:"camera"`
	TilesetURL  string        `json:"tileset_url"`
	UserID      uuid.UUID     `json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func newPlanResponse(plan *models.PlanDB) PlanResponse {
	return PlanResponse{
		ID:          plan.PlanID,
		Name:        plan.Name,
		Description: plan.Description,
		StartTime:   plan.StartTime,
		Camera:      plan.Camera,
		TilesetURL:  plan.TilesetURL,
		UserID:      plan.UserID,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

// Package mazeapi exposes maze sessions over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// NewSessionRequest starts a session. Both fields are optional.
type NewSessionRequest struct {
	Size int    `json:"size" binding:"omitempty,min=1,max=500"`
	Seed *int64 `json:"seed"`
}

// SessionResponse carries a session id and its state.
type SessionResponse struct {
	ID    uuid.UUID     `json:"id"`
	State game.Snapshot `json:"state"`
}

// MoveRequest asks to move the player one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// LevelResponse summarises a finished level.
type LevelResponse struct {
	Level  int   `json:"level"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
	Moves  int   `json:"moves"`
}

// MoveResponse reports the move outcome and the resulting state.
type MoveResponse struct {
	Result   maze.MoveResult `json:"result"`
	Finished *LevelResponse  `json:"finished,omitempty"`
	State    game.Snapshot   `json:"state"`
}

// ResizeRequest asks for a larger or smaller maze.
type ResizeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=larger smaller"`
}

// HintResponse points towards the exit.
type HintResponse struct {
	Direction maze.Direction `json:"direction"`
	Distance  int            `json:"distance"`
}

// CullingRequest toggles occlusion culling.
type CullingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PointResponse is a boundary point; X and Y are approximations of the exact
// fractions in ExactX and ExactY.
type PointResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ExactX string  `json:"exact_x"`
	ExactY string  `json:"exact_y"`
}

// WallResponse names one wall segment.
type WallResponse struct {
	Orientation string `json:"orientation"`
	Col         int    `json:"col"`
	Row         int    `json:"row"`
}

// VisibilityResponse is the visible polygon around the player.
type VisibilityResponse struct {
	Points    []PointResponse `json:"points"`
	Walls     []WallResponse  `json:"walls"`
	Closed    bool            `json:"closed"`
	Truncated bool            `json:"truncated"`
}

package mazeapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/visibility"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze sessions.
type MazeController struct {
	sessions i.SessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.SessionManager) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("session manager is required")
	}
	return &MazeController{sessions: sm}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.newSession)
		mazes.GET("/:ID", mc.snapshot)
		mazes.DELETE("/:ID", mc.endSession)
		mazes.POST("/:ID/moves", mc.move)
		mazes.POST("/:ID/resize", mc.resize)
		mazes.GET("/:ID/hint", mc.hint)
		mazes.PUT("/:ID/culling", mc.culling)
		mazes.GET("/:ID/visibility", mc.visibility)
		mazes.GET("/:ID/levels/last", mc.lastLevel)
	}
}

// newSession handles session creation. An empty body uses the defaults.
func (mc *MazeController) newSession(ctx *gin.Context) {
	var request NewSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, snap, err := mc.sessions.NewSession(ctx, i.SessionOptions{Size: request.Size, Seed: request.Seed})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &SessionResponse{ID: id, State: snap})
}

func (mc *MazeController) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Snapshot(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &SessionResponse{ID: id, State: snap})
}

func (mc *MazeController) endSession(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.EndSession(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// move handles a single move; a blocked move is still a 200 response.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := maze.ParseDirection(request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}

	out, err := mc.sessions.Move(ctx, id, dir)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := &MoveResponse{Result: out.Result, State: out.Snapshot}
	if f := out.Finished; f != nil {
		response.Finished = &LevelResponse{Level: f.Level, Width: f.Width, Height: f.Height, Seed: f.Seed, Moves: f.Moves}
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) resize(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request ResizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := mc.sessions.Resize(ctx, id, request.Mode == "larger")
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &SessionResponse{ID: id, State: snap})
}

func (mc *MazeController) hint(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	dir, dist, err := mc.sessions.Hint(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &HintResponse{Direction: dir, Distance: dist})
}

func (mc *MazeController) culling(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request CullingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.sessions.SetCulling(id, *request.Enabled); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"enabled": *request.Enabled})
}

func (mc *MazeController) visibility(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	b, err := mc.sessions.Visibility(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toVisibilityResponse(b))
}

// lastLevel answers with the latest level the session finished, even after
// the session was ended.
func (mc *MazeController) lastLevel(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	r, err := mc.sessions.LastLevel(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LevelResponse{Level: r.Level, Width: r.Width, Height: r.Height, Seed: r.Seed, Moves: r.Moves})
}

func toVisibilityResponse(b *visibility.Boundary) *VisibilityResponse {
	response := &VisibilityResponse{
		Points:    make([]PointResponse, 0, len(b.Points)),
		Closed:    b.Closed,
		Truncated: b.Truncated,
	}
	for _, p := range b.Points {
		response.Points = append(response.Points, PointResponse{
			X:      p.X.Float64(),
			Y:      p.Y.Float64(),
			ExactX: p.X.String(),
			ExactY: p.Y.String(),
		})
	}
	for _, w := range b.VisibleWalls() {
		response.Walls = append(response.Walls, WallResponse{Orientation: w.Orientation.String(), Col: w.Col, Row: w.Row})
	}
	return response
}

// sessionID parses the :ID path parameter, answering 400 itself when it is
// not a uuid.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, i.ErrLevelNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrCullingDisabled):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDirection), errors.Is(err, maze.ErrInvalidDimension), errors.Is(err, service.ErrSizeTooSmall):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

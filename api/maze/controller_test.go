package mazeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-maze/api"
	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sizestore"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := logger.New("TEST", config.ColorCyan, io.Discard)
	require.NoError(t, err)

	sm, err := service.NewSessionManager(&service.Config{
		SizeStore:     sizestore.NewMemoryStore(6),
		LevelRecorder: repo.NewMemoryLevelRepo(),
		Logger:        l,
		MinSize:       4,
		AspectRatio:   1,
	})
	require.NoError(t, err)

	c, err := NewMazeController(sm)
	require.NoError(t, err)

	return api.NewRouter(api.Config{BaseURL: "/api", Controllers: []i.Controller{c}}).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type sessionBody struct {
	ID    uuid.UUID `json:"id"`
	State struct {
		Size    int     `json:"size"`
		Width   int     `json:"width"`
		Level   int     `json:"level"`
		Culling bool    `json:"culling"`
		Hint    *string `json:"hint"`
	} `json:"state"`
}

func createSession(t *testing.T, h http.Handler) sessionBody {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/mazes", gin.H{"seed": 4})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body sessionBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewSessionRoute(t *testing.T) {
	h := newTestServer(t)

	t.Run("SavedSize", func(t *testing.T) {
		body := createSession(t, h)
		assert.NotEqual(t, uuid.Nil, body.ID)
		assert.Equal(t, 6, body.State.Size)
		assert.Equal(t, 1, body.State.Level)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("ExplicitSize", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", gin.H{"size": 8, "seed": 1})
		require.Equal(t, http.StatusCreated, rec.Code)
		var body sessionBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 8, body.State.Width)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", gin.H{"size": -1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("SizeBelowMinimum", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", gin.H{"size": 2})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionRoutes(t *testing.T) {
	h := newTestServer(t)
	s := createSession(t, h)
	base := "/api/v1/mazes/" + s.ID.String()

	t.Run("Snapshot", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, base, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rendered"`)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/mazes/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Hint", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, base+"/hint", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var hint HintResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hint))
		assert.NotEmpty(t, hint.Direction)
		assert.GreaterOrEqual(t, hint.Distance, 0)
	})

	t.Run("Move", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, base+"/moves", gin.H{"direction": "up"})
		require.Equal(t, http.StatusOK, rec.Code)

		var out struct {
			Result string `json:"result"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Contains(t, []string{"blocked", "moved", "exit_reached"}, out.Result)
	})

	t.Run("MoveInvalidDirection", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, base+"/moves", gin.H{"direction": "sideways"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Resize", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, base+"/resize", gin.H{"mode": "larger"})
		require.Equal(t, http.StatusOK, rec.Code)
		var body sessionBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 7, body.State.Size)

		rec = do(t, h, http.MethodPost, base+"/resize", gin.H{"mode": "sideways"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Visibility", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, base+"/visibility", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = do(t, h, http.MethodPut, base+"/culling", gin.H{"enabled": true})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, h, http.MethodGet, base+"/visibility", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var vis VisibilityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vis))
		assert.True(t, vis.Closed)
		assert.NotEmpty(t, vis.Points)
		assert.NotEmpty(t, vis.Walls)
	})

	t.Run("CullingRequiresFlag", func(t *testing.T) {
		rec := do(t, h, http.MethodPut, base+"/culling", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := do(t, h, http.MethodDelete, base, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, h, http.MethodGet, base, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLastLevelRoute(t *testing.T) {
	h := newTestServer(t)
	s := createSession(t, h)
	base := "/api/v1/mazes/" + s.ID.String()

	rec := do(t, h, http.MethodGet, base+"/levels/last", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var out struct {
		Result   string         `json:"result"`
		Finished *LevelResponse `json:"finished"`
	}
	for step := 0; step < 1000 && out.Result != "exit_reached"; step++ {
		rec = do(t, h, http.MethodGet, base+"/hint", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var hint HintResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hint))

		rec = do(t, h, http.MethodPost, base+"/moves", gin.H{"direction": string(hint.Direction)})
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.NotEqual(t, "blocked", out.Result)
	}
	require.Equal(t, "exit_reached", out.Result)
	require.NotNil(t, out.Finished)

	rec = do(t, h, http.MethodGet, base+"/levels/last", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var level LevelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &level))
	assert.Equal(t, 1, level.Level)
	assert.Equal(t, out.Finished.Moves, level.Moves)

	rec = do(t, h, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, base+"/levels/last", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "records outlive the session")
}

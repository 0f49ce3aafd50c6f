package mazes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewController().Register(r.Group("/v1"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate(t *testing.T) {
	r := testRouter()

	t.Run("returns a spanning tree maze", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes", GenerateRequest{
			Width: 5, Height: 5, Algorithm: "kruskal", Seed: 42,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp GenerateResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, 24, resp.WallsBroken)
		assert.Len(t, resp.Grid, 5)
		assert.Len(t, resp.Grid[0], 5)
		assert.NotEmpty(t, resp.Rendering)
	})

	t.Run("is deterministic per seed", func(t *testing.T) {
		body := GenerateRequest{Width: 6, Height: 4, Algorithm: "wilson", Seed: 7}
		var first, second GenerateResponse
		assert.NoError(t, json.Unmarshal(postJSON(t, r, "/v1/mazes", body).Body.Bytes(), &first))
		assert.NoError(t, json.Unmarshal(postJSON(t, r, "/v1/mazes", body).Body.Bytes(), &second))
		assert.Equal(t, first.Rendering, second.Rendering)
		assert.Equal(t, first.Steps, second.Steps)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes", gin.H{"width": 5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown algorithms", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes", GenerateRequest{
			Width: 5, Height: 5, Algorithm: "voronoi",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSolve(t *testing.T) {
	r := testRouter()

	t.Run("finds a corner-to-corner path by default", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes/solve", SolveRequest{
			GenerateRequest: GenerateRequest{Width: 6, Height: 6, Algorithm: "prim", Seed: 3},
			Solver:          "astar",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp SolveResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.NotEmpty(t, resp.Path)
		assert.Equal(t, PositionDTO{Row: 0, Col: 0}, resp.Path[0])
		assert.Equal(t, PositionDTO{Row: 5, Col: 5}, resp.Path[len(resp.Path)-1])
	})

	t.Run("honors explicit endpoints", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes/solve", SolveRequest{
			GenerateRequest: GenerateRequest{Width: 6, Height: 6, Algorithm: "dfs", Seed: 9},
			Solver:          "bfs",
			Start:           &PositionDTO{Row: 2, Col: 2},
			End:             &PositionDTO{Row: 4, Col: 1},
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp SolveResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.Equal(t, PositionDTO{Row: 2, Col: 2}, resp.Path[0])
		assert.Equal(t, PositionDTO{Row: 4, Col: 1}, resp.Path[len(resp.Path)-1])
	})

	t.Run("rejects out-of-bounds endpoints", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes/solve", SolveRequest{
			GenerateRequest: GenerateRequest{Width: 4, Height: 4, Algorithm: "eller", Seed: 1},
			Solver:          "bfs",
			End:             &PositionDTO{Row: 9, Col: 9},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown solvers", func(t *testing.T) {
		w := postJSON(t, r, "/v1/mazes/solve", SolveRequest{
			GenerateRequest: GenerateRequest{Width: 4, Height: 4, Algorithm: "kruskal", Seed: 1},
			Solver:          "dijkstra",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Package mazes exposes maze generation and solving over HTTP. Requests
// are deterministic: the same dimensions, algorithm, and seed always
// produce the same maze, so a solve request simply re-generates its maze
// from the seed instead of referencing server-side state.
package mazes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mazeforge/mazeforge/generator"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/solver"
	"github.com/mazeforge/mazeforge/trace"
)

// Controller handles maze generation and solving requests.
type Controller struct{}

// NewController initializes a maze Controller.
func NewController() *Controller {
	return &Controller{}
}

// Register registers the maze routes.
func (mc *Controller) Register(route *gin.RouterGroup) {
	m := route.Group("/mazes")
	{
		m.POST("", mc.generate)
		m.POST("/solve", mc.solve)
	}
}

// buildMaze runs the requested generator to completion and returns the
// finished grid with the recorded trace.
func buildMaze(req GenerateRequest) (*maze.Grid, *trace.Recording, error) {
	g, err := maze.New(req.Width, req.Height)
	if err != nil {
		return nil, nil, err
	}
	gen, err := generator.New(generator.Kind(req.Algorithm), g, req.Seed)
	if err != nil {
		return nil, nil, err
	}
	return g, trace.Capture(gen), nil
}

func gridDTO(g *maze.Grid) [][]CellDTO {
	rows := make([][]CellDTO, g.Height)
	for r := range rows {
		rows[r] = make([]CellDTO, g.Width)
		for c := range rows[r] {
			cell := g.Cells[r][c]
			rows[r][c] = CellDTO{
				North: cell.NorthWall,
				South: cell.SouthWall,
				East:  cell.EastWall,
				West:  cell.WestWall,
			}
		}
	}
	return rows
}

// generate handles maze creation requests.
func (mc *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, rec, err := buildMaze(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &GenerateResponse{
		ID:          rec.ID.String(),
		Width:       g.Width,
		Height:      g.Height,
		Algorithm:   request.Algorithm,
		Seed:        request.Seed,
		Steps:       len(rec.Events),
		WallsBroken: rec.CountKind(trace.KindWallBroken),
		WallsAdded:  rec.CountKind(trace.KindWallAdded),
		Grid:        gridDTO(g),
		Rendering:   g.String(),
	})
}

// solve handles path search requests.
func (mc *Controller) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, _, err := buildMaze(request.GenerateRequest)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := maze.CellPosition{}
	end := maze.CellPosition{Row: g.Height - 1, Col: g.Width - 1}
	if request.Start != nil {
		start = maze.CellPosition{Row: request.Start.Row, Col: request.Start.Col}
	}
	if request.End != nil {
		end = maze.CellPosition{Row: request.End.Row, Col: request.End.Col}
	}

	s, err := solver.New(solver.Kind(request.Solver), g, start, end, request.SolverSeed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := trace.Capture(s)
	path, err := s.Result()
	if err != nil && !errors.Is(err, solver.ErrUnreachable) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := &SolveResponse{
		ID:     rec.ID.String(),
		Solver: request.Solver,
		Steps:  len(rec.Events),
		Found:  err == nil,
	}
	for _, p := range path {
		response.Path = append(response.Path, PositionDTO{Row: p.Row, Col: p.Col})
	}
	ctx.JSON(http.StatusOK, response)
}

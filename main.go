package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mazeforge/mazeforge/api"
	api_i "github.com/mazeforge/mazeforge/api/i"
	"github.com/mazeforge/mazeforge/api/mazes"
	"github.com/mazeforge/mazeforge/config"
	"github.com/mazeforge/mazeforge/generator"
	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/render"
	"github.com/mazeforge/mazeforge/solver"
	"github.com/mazeforge/mazeforge/termviz"
	"github.com/mazeforge/mazeforge/trace"
)

const frameDelay = 15 * time.Millisecond

// Global variables for dependencies
var (
	mazeController *mazes.Controller
	router         *api.Router
)

func initMazeController() {
	mazeController = mazes.NewController()
	log.Printf("[APP] [INFO] Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	log.Printf("[APP] [INFO] Router initialized")
}

// runDemo generates and solves one maze in the terminal, replaying both
// traces frame by frame.
func runDemo() error {
	cfg := config.Envs

	g, err := maze.New(cfg.MazeWidth, cfg.MazeHeight)
	if err != nil {
		return err
	}

	genKind := generator.Kind(cfg.Generator)
	gen, err := generator.New(genKind, g, cfg.MazeSeed)
	if err != nil {
		return err
	}
	genRun := trace.Capture(gen)

	player, err := termviz.NewPlayer(os.Stdout, g.Width, g.Height, genKind == generator.RecursiveDivision, frameDelay)
	if err != nil {
		return err
	}
	player.Play(genRun.Events)
	log.Printf("[DEMO] [INFO] Generated maze %s with %s in %d steps", genRun.ID, cfg.Generator, len(genRun.Events))

	start := maze.CellPosition{Row: 0, Col: 0}
	end := maze.CellPosition{Row: g.Height - 1, Col: g.Width - 1}
	s, err := solver.New(solver.Kind(cfg.Solver), g, start, end, cfg.MazeSeed)
	if err != nil {
		return err
	}
	solveRun := trace.Capture(s)

	termviz.NewGridPlayer(os.Stdout, g, frameDelay).Play(solveRun.Events)

	path, err := s.Result()
	if err != nil {
		return err
	}
	log.Printf("[DEMO] [INFO] Solved maze %s with %s: path length %d in %d steps", solveRun.ID, cfg.Solver, len(path), len(solveRun.Events))

	if cfg.SnapshotAt != "" {
		if err := render.SavePNG(cfg.SnapshotAt, g, path); err != nil {
			return err
		}
		log.Printf("[DEMO] [INFO] Snapshot written to %s", cfg.SnapshotAt)
	}
	return nil
}

func main() {
	if config.Envs.DemoMode {
		if err := runDemo(); err != nil {
			log.Printf("[DEMO] [ERROR] %v", err)
			os.Exit(1)
		}
		return
	}

	gin.SetMode(config.Envs.GinMode)
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		log.Printf("[APP] [ERROR] Starting server: %v", err)
		os.Exit(1)
	}
}

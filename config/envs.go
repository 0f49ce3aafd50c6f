package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	DemoMode   bool   // Run the terminal playback demo instead of the server
	MazeWidth  int    // Default maze width for the demo
	MazeHeight int    // Default maze height for the demo
	MazeSeed   int64  // Default random seed for the demo
	Generator  string // Default generation algorithm for the demo
	Solver     string // Default solving algorithm for the demo
	SnapshotAt string // Optional path for a PNG snapshot of the demo maze
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		DemoMode:   getEnvWithDefault("DEMO_MODE", "false") == "true",
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", 16),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", 12),
		MazeSeed:   int64(getEnvAsIntWithDefault("MAZE_SEED", 42)),
		Generator:  getEnvWithDefault("MAZE_GENERATOR", "kruskal"),
		Solver:     getEnvWithDefault("MAZE_SOLVER", "astar"),
		SnapshotAt: getEnvWithDefault("MAZE_SNAPSHOT", ""),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a
// default value if not set. A value that cannot be parsed is a fatal error.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

package mazes

// PositionDTO addresses a cell in API payloads.
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellDTO carries the wall flags of one cell.
type CellDTO struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// GenerateRequest asks for a maze of the given dimensions, built by the
// named algorithm from the given seed.
type GenerateRequest struct {
	Width     int    `json:"width" binding:"required,min=1"`
	Height    int    `json:"height" binding:"required,min=1"`
	Algorithm string `json:"algorithm" binding:"required"`
	Seed      int64  `json:"seed"`
}

// GenerateResponse returns the finished maze plus run metadata. The step
// count is the length of the recorded generation trace.
type GenerateResponse struct {
	ID          string      `json:"id"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Algorithm   string      `json:"algorithm"`
	Seed        int64       `json:"seed"`
	Steps       int         `json:"steps"`
	WallsBroken int         `json:"wallsBroken"`
	WallsAdded  int         `json:"wallsAdded"`
	Grid        [][]CellDTO `json:"grid"`
	Rendering   string      `json:"rendering"`
}

// SolveRequest deterministically re-generates a maze from its seed and
// solves it with the named strategy. Start and end default to the
// top-left and bottom-right corners when omitted.
type SolveRequest struct {
	GenerateRequest
	Solver     string       `json:"solver" binding:"required"`
	SolverSeed int64        `json:"solverSeed"`
	Start      *PositionDTO `json:"start"`
	End        *PositionDTO `json:"end"`
}

// SolveResponse returns the search outcome. Found is false when the end
// cell is unreachable, which is a legitimate result for imperfect mazes.
type SolveResponse struct {
	ID     string        `json:"id"`
	Solver string        `json:"solver"`
	Steps  int           `json:"steps"`
	Found  bool          `json:"found"`
	Path   []PositionDTO `json:"path,omitempty"`
}

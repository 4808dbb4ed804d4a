package builder

import (
	"errors"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/SurajMandal14/pathfinder/gridgraph"
)

// Sentinel errors for board generation.
var (
	// ErrTooFewNodes indicates a node count below the minimum of 1.
	ErrTooFewNodes = errors.New("builder: node count must be at least 1")

	// ErrBadDimensions indicates a non-positive board width or height.
	ErrBadDimensions = errors.New("builder: board dimensions must be positive")

	// ErrBadLevels indicates an obstacle level at or above the traffic level.
	ErrBadLevels = errors.New("builder: obstacle level must be below traffic level")

	// ErrBadDegree indicates a neighbor degree below the minimum of 1.
	ErrBadDegree = errors.New("builder: degree must be at least 1")
)

// Terrain generation defaults. Noise values fall in [-1, 1]; cells below
// the obstacle level become walls, cells above the traffic level become
// weighted roads up to maxTrafficCode.
const (
	defaultSeed          = 1
	defaultObstacleLevel = -0.45
	defaultTrafficLevel  = 0.45
	defaultNoiseFreq     = 0.35
	maxTrafficCode       = 5
)

// TerrainOptions tunes procedural grid generation.
type TerrainOptions struct {
	// Seed fixes the noise field; equal seeds produce equal boards.
	Seed int64
	// ObstacleLevel is the noise value below which a cell is an obstacle.
	ObstacleLevel float64
	// TrafficLevel is the noise value above which a road gains traffic
	// weight. Must be above ObstacleLevel.
	TrafficLevel float64
}

// TerrainOption is a functional option for Terrain.
type TerrainOption func(*TerrainOptions)

// WithSeed fixes the generator seed.
func WithSeed(seed int64) TerrainOption {
	return func(o *TerrainOptions) { o.Seed = seed }
}

// WithObstacleLevel sets the noise cutoff below which cells are obstacles.
func WithObstacleLevel(level float64) TerrainOption {
	return func(o *TerrainOptions) { o.ObstacleLevel = level }
}

// WithTrafficLevel sets the noise cutoff above which roads carry traffic.
func WithTrafficLevel(level float64) TerrainOption {
	return func(o *TerrainOptions) { o.TrafficLevel = level }
}

// Terrain builds a size×size grid whose cell codes follow a smooth noise
// field: obstacles in the troughs, plain roads in the midband, weighted
// roads (codes 2..5) toward the peaks. Size and scale validation is
// gridgraph.NewGrid's; ErrBadLevels guards the cutoffs.
// Complexity: O(size²).
func Terrain(size int, cellScale float64, opts ...TerrainOption) (*gridgraph.Grid, error) {
	cfg := TerrainOptions{
		Seed:          defaultSeed,
		ObstacleLevel: defaultObstacleLevel,
		TrafficLevel:  defaultTrafficLevel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ObstacleLevel >= cfg.TrafficLevel {
		return nil, ErrBadLevels
	}

	g, err := gridgraph.NewGrid(size, cellScale)
	if err != nil {
		return nil, err
	}

	noise := opensimplex.New(cfg.Seed)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			v := noise.Eval2(float64(col)*defaultNoiseFreq, float64(row)*defaultNoiseFreq)
			g.SetCellType(row, col, cellCode(v, cfg))
		}
	}

	return g, nil
}

// cellCode maps one noise sample to a cell code.
func cellCode(v float64, cfg TerrainOptions) int {
	switch {
	case v < cfg.ObstacleLevel:
		return gridgraph.CellObstacle
	case v < cfg.TrafficLevel:
		return gridgraph.CellRoad
	default:
		// Scale the remaining band onto traffic codes 2..maxTrafficCode.
		span := 1 - cfg.TrafficLevel
		code := 2 + int((v-cfg.TrafficLevel)/span*float64(maxTrafficCode-1))
		if code > maxTrafficCode {
			code = maxTrafficCode
		}

		return code
	}
}

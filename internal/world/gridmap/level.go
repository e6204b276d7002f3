package gridmap

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/vmath"
)

// SpawnPoint is a position or direction in a level file.
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelData is the JSON layout of a level file.
type LevelData struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Cells  [][]int     `json:"cells"`  // [y][x] cell tags
	Spawn  *SpawnPoint `json:"spawn"`  // Player start, defaults to (4, 4)
	Facing *SpawnPoint `json:"facing"` // Initial view direction, defaults to (-1, 0)
}

// Level is a loaded map plus where the player starts on it.
type Level struct {
	Name   string
	Map    *GridMap
	Spawn  vmath.Vec2F
	Facing vmath.Vec2F
}

var (
	defaultSpawn  = vmath.Vec2F{X: 4, Y: 4}
	defaultFacing = vmath.Vec2F{X: -1, Y: 0}
)

// DefaultLevel returns the built-in level with its standard spawn.
func DefaultLevel() *Level {
	return &Level{
		Name:   "default",
		Map:    Default(),
		Spawn:  defaultSpawn,
		Facing: defaultFacing,
	}
}

// LoadLevel reads and validates a level from a JSON file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}

	return level, nil
}

// ParseLevel decodes and validates level JSON.
func ParseLevel(data []byte) (*Level, error) {
	var levelData LevelData
	if err := json.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	m, err := levelData.buildMap()
	if err != nil {
		return nil, err
	}

	level := &Level{
		Name:   levelData.Name,
		Map:    m,
		Spawn:  defaultSpawn,
		Facing: defaultFacing,
	}

	if levelData.Spawn != nil {
		level.Spawn = vmath.Vec2F{X: levelData.Spawn.X, Y: levelData.Spawn.Y}
	}
	if levelData.Facing != nil {
		level.Facing = vmath.Vec2F{X: levelData.Facing.X, Y: levelData.Facing.Y}
	}

	if err := level.validateSpawn(); err != nil {
		return nil, err
	}

	return level, nil
}

// buildMap checks the cell array against the declared size and converts it.
func (d *LevelData) buildMap() (*GridMap, error) {
	if len(d.Cells) != d.Height {
		return nil, fmt.Errorf("%w: cells height mismatch: expected %d, got %d", ErrDimensions, d.Height, len(d.Cells))
	}

	cells := make([]uint8, 0, d.Width*d.Height)
	for y, row := range d.Cells {
		if len(row) != d.Width {
			return nil, fmt.Errorf("%w: cells width mismatch at row %d: expected %d, got %d", ErrDimensions, y, d.Width, len(row))
		}
		for x, tag := range row {
			if tag < 0 || tag > math.MaxUint8 {
				return nil, fmt.Errorf("cell (%d, %d): tag %d out of range 0-255", x, y, tag)
			}
			cells = append(cells, uint8(tag))
		}
	}

	return New(d.Width, d.Height, cells)
}

func (l *Level) validateSpawn() error {
	cell := l.Spawn.Floor()
	if !l.Map.Open(cell.X, cell.Y) {
		return fmt.Errorf("spawn (%.2f, %.2f) is not an open cell", l.Spawn.X, l.Spawn.Y)
	}
	if !finite(l.Spawn) {
		return fmt.Errorf("spawn (%v, %v) is not finite", l.Spawn.X, l.Spawn.Y)
	}
	if l.Facing.Len() == 0 {
		return fmt.Errorf("facing direction must be non-zero")
	}
	facing := l.Facing.Normalize()
	if !finite(facing) {
		return fmt.Errorf("facing (%v, %v) cannot be normalized", l.Facing.X, l.Facing.Y)
	}
	l.Facing = facing
	return nil
}

func finite(v vmath.Vec2F) bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

package main

import (
	"math/rand"
)

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

// String returns the motion word used in a rooms file
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	}
	return "UNKNOWN"
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// Cell represents a single cell in the maze grid
type Cell struct {
	X, Y    int
	Visited bool
	Walls   map[Direction]bool // true = wall exists
	Role    CellRole
	Object  string // object lying here, empty for none
}

// CellRole marks the cells the game cares about
type CellRole int

const (
	RolePassage CellRole = iota
	RoleEntrance
	RoleKey  // the key lies here
	RoleExit // leaving from here with the key ends the game
)

// Chute is a one-way slide from one cell to another
type Chute struct {
	FromX, FromY int
	ToX, ToY     int
}

// MazeGenerator generates a maze using DFS recursive backtracker
type MazeGenerator struct {
	Width, Height int
	Grid          [][]*Cell
	Rand          *rand.Rand
	Chutes        []Chute

	TreasureCount int
}

// NewMazeGenerator creates a new maze generator
func NewMazeGenerator(width, height int, seed int64) *MazeGenerator {
	mg := &MazeGenerator{
		Width:  width,
		Height: height,
		Grid:   make([][]*Cell, height),
		Rand:   rand.New(rand.NewSource(seed)),
	}

	// Initialize grid with all walls
	for y := 0; y < height; y++ {
		mg.Grid[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			mg.Grid[y][x] = &Cell{
				X:       x,
				Y:       y,
				Visited: false,
				Walls: map[Direction]bool{
					North: true,
					South: true,
					East:  true,
					West:  true,
				},
				Role: RolePassage,
			}
		}
	}

	return mg
}

// Generate carves the maze starting from the entrance in the top-left corner
func (mg *MazeGenerator) Generate() {
	mg.Grid[0][0].Role = RoleEntrance
	mg.carveFrom(0, 0)
}

// carveFrom recursively carves passages using DFS
func (mg *MazeGenerator) carveFrom(x, y int) {
	cell := mg.Grid[y][x]
	cell.Visited = true

	for _, dir := range mg.shuffledDirections() {
		nx, ny := mg.neighbor(x, y, dir)
		if mg.inBounds(nx, ny) && !mg.Grid[ny][nx].Visited {
			// Remove wall between current cell and neighbor
			cell.Walls[dir] = false
			mg.Grid[ny][nx].Walls[dir.Opposite()] = false

			mg.carveFrom(nx, ny)
		}
	}
}

func (mg *MazeGenerator) shuffledDirections() []Direction {
	dirs := AllDirections()
	mg.Rand.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

func (mg *MazeGenerator) neighbor(x, y int, dir Direction) (int, int) {
	switch dir {
	case North:
		return x, y - 1
	case South:
		return x, y + 1
	case East:
		return x + 1, y
	case West:
		return x - 1, y
	}
	return x, y
}

func (mg *MazeGenerator) inBounds(x, y int) bool {
	return x >= 0 && x < mg.Width && y >= 0 && y < mg.Height
}

// distances returns the walking distance of every cell from (x, y)
func (mg *MazeGenerator) distances(x, y int) [][]int {
	dist := make([][]int, mg.Height)
	for i := range dist {
		dist[i] = make([]int, mg.Width)
		for j := range dist[i] {
			dist[i][j] = -1
		}
	}

	dist[y][x] = 0
	queue := []*Cell{mg.Grid[y][x]}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, dir := range AllDirections() {
			if cell.Walls[dir] {
				continue
			}
			nx, ny := mg.neighbor(cell.X, cell.Y, dir)
			if dist[ny][nx] < 0 {
				dist[ny][nx] = dist[cell.Y][cell.X] + 1
				queue = append(queue, mg.Grid[ny][nx])
			}
		}
	}
	return dist
}

// PlaceGoal hides the key in the dead end farthest from the entrance and
// puts the exit in the dead end farthest from the key. In a maze with no
// spare dead end the exit falls back to the entrance.
func (mg *MazeGenerator) PlaceGoal() {
	deadEnds := mg.findDeadEnds()
	if len(deadEnds) == 0 {
		mg.Grid[0][0].Role = RoleExit
		return
	}

	key := farthest(deadEnds, mg.distances(0, 0))
	key.Role = RoleKey
	key.Object = KeyObject

	exit := farthest(deadEnds, mg.distances(key.X, key.Y))
	if exit == nil {
		exit = mg.Grid[0][0]
	}
	exit.Role = RoleExit
}

func farthest(cells []*Cell, dist [][]int) *Cell {
	var best *Cell
	for _, c := range cells {
		if c.Role != RolePassage {
			continue
		}
		if best == nil || dist[c.Y][c.X] > dist[best.Y][best.X] {
			best = c
		}
	}
	return best
}

// PlaceTreasures scatters treasures over the remaining dead ends
func (mg *MazeGenerator) PlaceTreasures(names []string) {
	deadEnds := mg.findDeadEnds()

	mg.Rand.Shuffle(len(deadEnds), func(i, j int) {
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	})

	for _, cell := range deadEnds {
		if mg.TreasureCount == len(names) {
			return
		}
		if cell.Role == RolePassage && cell.Object == "" {
			cell.Object = names[mg.TreasureCount]
			mg.TreasureCount++
		}
	}
}

// findDeadEnds finds all cells with only one exit, excluding the entrance
func (mg *MazeGenerator) findDeadEnds() []*Cell {
	var deadEnds []*Cell

	for y := 0; y < mg.Height; y++ {
		for x := 0; x < mg.Width; x++ {
			cell := mg.Grid[y][x]
			if cell.Role == RoleEntrance {
				continue
			}

			exits := 0
			for _, dir := range AllDirections() {
				if !cell.Walls[dir] {
					exits++
				}
			}

			if exits == 1 {
				deadEnds = append(deadEnds, cell)
			}
		}
	}

	return deadEnds
}

// PlaceChutes adds one-way slides between cells in opposite quadrants
func (mg *MazeGenerator) PlaceChutes(count int) {
	quadrants := make([][]*Cell, 4)
	for y := 0; y < mg.Height; y++ {
		for x := 0; x < mg.Width; x++ {
			cell := mg.Grid[y][x]
			if cell.Role != RolePassage || cell.Object != "" {
				continue
			}

			// 0=NW, 1=NE, 2=SW, 3=SE
			quadrant := 0
			if x >= mg.Width/2 {
				quadrant += 1
			}
			if y >= mg.Height/2 {
				quadrant += 2
			}
			quadrants[quadrant] = append(quadrants[quadrant], cell)
		}
	}

	for i := range quadrants {
		mg.Rand.Shuffle(len(quadrants[i]), func(a, b int) {
			quadrants[i][a], quadrants[i][b] = quadrants[i][b], quadrants[i][a]
		})
	}

	// NW slides to SE, NE slides to SW
	pairs := [][2]int{{0, 3}, {1, 2}}
	for i := 0; i < count && i < len(pairs); i++ {
		q1, q2 := pairs[i][0], pairs[i][1]
		if len(quadrants[q1]) == 0 || len(quadrants[q2]) == 0 {
			continue
		}
		from, to := quadrants[q1][0], quadrants[q2][0]
		mg.Chutes = append(mg.Chutes, Chute{FromX: from.X, FromY: from.Y, ToX: to.X, ToY: to.Y})
		quadrants[q1] = quadrants[q1][1:]
		quadrants[q2] = quadrants[q2][1:]
	}
}

// RoomCount returns the number of rooms the maze becomes
func (mg *MazeGenerator) RoomCount() int {
	return mg.Width*mg.Height + len(mg.Chutes)
}

package nav

import "cellmaze/internal/maze"

// FarCorner returns the cell diagonally opposite (0,0,0), the default goal.
func FarCorner(dim int) maze.Pos {
	return maze.Pos{dim - 1, dim - 1, dim - 1}
}

// Player is a token walking a maze graph toward a goal. It stops accepting
// moves once the goal is reached.
type Player struct {
	graph *Graph
	pos   maze.Pos
	goal  maze.Pos
	moves int
}

// NewPlayer places a token at start.
func NewPlayer(gr *Graph, start, goal maze.Pos) *Player {
	return &Player{graph: gr, pos: start, goal: goal}
}

// Pos returns the token's cell.
func (p *Player) Pos() maze.Pos { return p.pos }

// Goal returns the target cell.
func (p *Player) Goal() maze.Pos { return p.goal }

// Moves counts the successful moves so far.
func (p *Player) Moves() int { return p.moves }

// AtGoal reports whether the token has reached its goal.
func (p *Player) AtGoal() bool { return p.pos == p.goal }

// Move steps the token one cell in direction d if a maze edge allows it and
// reports whether it moved.
func (p *Player) Move(d maze.Direction) bool {
	if p.AtGoal() || !d.Valid() {
		return false
	}
	next := p.pos.Step(d)
	if !p.graph.Legal(p.pos, next) {
		return false
	}
	p.pos = next
	p.moves++
	return true
}

// Remaining returns the number of moves left on the shortest route to the goal.
func (p *Player) Remaining() (int, error) {
	path, err := p.graph.Path(p.pos, p.goal)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

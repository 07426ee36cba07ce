package breakout

import "github.com/vovakirdan/tui-breaker/internal/core"

// Collision is an effect detected while marching a body. Collisions are
// queued during detection and applied only after every body has moved.
type Collision interface {
	collision()
}

// Bounce reflects a body's velocity along one axis.
type Bounce struct {
	Body *core.Body
	Axis core.Axis
}

// PaddleBounce is a vertical paddle hit, reflected by the hit offset.
type PaddleBounce struct {
	Ball   *Ball
	Paddle *Paddle
	Axis   core.Axis
}

// GridHit lists the cells of one grid struck by a ball's leading edge.
type GridHit struct {
	Ball  *Ball
	Axis  core.Axis
	Grid  *Grid
	Cells []CellPos
}

// BallEscaped is a ball crossing the bottom edge of the play area.
type BallEscaped struct {
	Ball *Ball
}

// PowerUpCaught is a falling power-up touching the paddle.
type PowerUpCaught struct {
	PowerUp *PowerUp
}

func (Bounce) collision()        {}
func (PaddleBounce) collision()  {}
func (GridHit) collision()       {}
func (BallEscaped) collision()   {}
func (PowerUpCaught) collision() {}

// Notification reports a state change to renderers and game-mode logic.
// A step returns its notifications in the order the changes happened.
type Notification interface {
	notification()
}

// BallCreated is sent when a ball enters play.
type BallCreated struct {
	Ball *Ball
}

// BallLost is sent when a ball is removed after leaving the area.
type BallLost struct {
	Ball *Ball
}

// BallsCleared is sent when all balls were removed on request.
type BallsCleared struct {
	Count int
}

// LastBallLost follows the BallLost that left no ball in play.
type LastBallLost struct{}

// CellDestroyed is sent for every brick killed.
type CellDestroyed struct {
	GridID int
	Pos    CellPos
	Rect   core.Rect // World rectangle of the cell at the time of the hit
	Effect Effect
}

// GridDestroyed is sent when a grid with no alive cells is removed.
type GridDestroyed struct {
	GridID int
}

// LevelCleared is sent when the last grid is removed.
type LevelCleared struct{}

// PowerUpSpawned is sent when a destroyed cell drops a power-up.
type PowerUpSpawned struct {
	PowerUp *PowerUp
}

// PowerUpCollected is sent after a caught power-up was applied.
type PowerUpCollected struct {
	Kind PowerUpKind
}

func (BallCreated) notification()      {}
func (BallLost) notification()         {}
func (BallsCleared) notification()     {}
func (LastBallLost) notification()     {}
func (CellDestroyed) notification()    {}
func (GridDestroyed) notification()    {}
func (LevelCleared) notification()     {}
func (PowerUpSpawned) notification()   {}
func (PowerUpCollected) notification() {}

package calibration

import (
	"errors"
	"fmt"
	"math"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrUnknownPoint is returned for actions naming a point not in the
	// session.
	ErrUnknownPoint = errors.New("calibration: unknown point")
	// ErrInvalidAction is returned for malformed actions.
	ErrInvalidAction = errors.New("calibration: invalid action")
)

// Action is one user edit applied by Session.Apply.
type Action interface {
	apply(p, seed Point) (Point, error)
	target() string
}

// Move places a point by hand.
type Move struct {
	ID   string
	X, Y float64
}

func (a Move) target() string { return a.ID }

func (a Move) apply(p, _ Point) (Point, error) {
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsInf(a.X, 0) || math.IsInf(a.Y, 0) {
		return p, fmt.Errorf("%w: move %s to non-finite position", ErrInvalidAction, a.ID)
	}
	return MoveTo(p, a.X, a.Y), nil
}

// ConfirmPoint accepts a point's current position.
type ConfirmPoint struct {
	ID string
}

func (a ConfirmPoint) target() string { return a.ID }

func (a ConfirmPoint) apply(p, _ Point) (Point, error) {
	return Confirm(p), nil
}

// ResetPoint restores a point to its seeded value.
type ResetPoint struct {
	ID string
}

func (a ResetPoint) target() string { return a.ID }

func (a ResetPoint) apply(p, seed Point) (Point, error) {
	return Reset(p, seed), nil
}

// Session is the calibration state for one photo pair. It is a value: Apply
// returns a new Session and leaves the receiver untouched.
type Session struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Seeds  []Point `json:"seeds"`
}

// NewSession starts a session from freshly seeded points.
func NewSession(seeds []Point) Session {
	return Session{
		ID:     ulid.Make().String(),
		Points: clonePoints(seeds),
		Seeds:  clonePoints(seeds),
	}
}

// Apply reduces one action into a new session state.
func (s Session) Apply(a Action) (Session, error) {
	if a == nil {
		return s, fmt.Errorf("%w: nil action", ErrInvalidAction)
	}
	i := s.indexOf(a.target())
	if i < 0 {
		return s, fmt.Errorf("%w: %q", ErrUnknownPoint, a.target())
	}

	seed := s.Points[i]
	if j := indexOf(s.Seeds, a.target()); j >= 0 {
		seed = s.Seeds[j]
	}

	updated, err := a.apply(s.Points[i], seed)
	if err != nil {
		return s, err
	}

	next := Session{ID: s.ID, Points: clonePoints(s.Points), Seeds: s.Seeds}
	next.Points[i] = updated
	return next, nil
}

// Point returns the current state of the point with id.
func (s Session) Point(id string) (Point, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Point{}, false
	}
	return s.Points[i], true
}

func (s Session) indexOf(id string) int {
	return indexOf(s.Points, id)
}

func indexOf(points []Point, id string) int {
	for i, p := range points {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		p.ReasonCodes = p.ReasonCodes.With()
		out[i] = p
	}
	return out
}

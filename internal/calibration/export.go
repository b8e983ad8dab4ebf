package calibration

import (
	"fmt"

	"facescore/internal/landmark"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// Export encodes points as a JSON array keyed by registry id.
func Export(points []Point) ([]byte, error) {
	if points == nil {
		points = []Point{}
	}
	data, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("encode calibration points: %w", err)
	}
	return data, nil
}

// Import decodes an exported point array and checks it against reg (Default
// when empty): every id must exist, appear once and match its entry's view.
func Import(data []byte, reg Registry) ([]Point, error) {
	if reg.Len() == 0 {
		reg = Default
	}

	var points []Point
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("decode calibration points: %w", err)
	}

	seen := make(map[string]bool, len(points))
	for i, p := range points {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("calibration point %d (%s): %w", i, p.ID, err)
		}
		e, ok := reg.Lookup(p.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, p.ID)
		}
		if e.View != p.View {
			return nil, fmt.Errorf("%w: %q is a %s point, got view %s", ErrInvalidAction, p.ID, e.View, p.View)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate point %q", ErrInvalidAction, p.ID)
		}
		seen[p.ID] = true
	}
	return points, nil
}

// Override is a user-verified position for one mesh index.
type Override struct {
	X, Y       float64
	Confidence float64
}

// Overrides returns per-view mesh-index overrides from points that were
// confirmed or placed by hand. Entries without a mesh index are skipped.
func Overrides(points []Point, reg Registry) map[landmark.View]map[int]Override {
	if reg.Len() == 0 {
		reg = Default
	}
	out := make(map[landmark.View]map[int]Override)
	for _, p := range points {
		if !p.Confirmed && p.Source != SourceManual {
			continue
		}
		e, ok := reg.Lookup(p.ID)
		if !ok || !e.HasMesh() || e.View != p.View {
			continue
		}
		if out[p.View] == nil {
			out[p.View] = make(map[int]Override)
		}
		out[p.View][e.MeshIndex] = Override{X: p.X, Y: p.Y, Confidence: p.Confidence}
	}
	return out
}

package pose

import (
	"math"

	"facescore/internal/landmark"
	"facescore/pkg/geometry"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Layout names the memory order a 4x4 matrix was read in.
type Layout string

const (
	RowMajor    Layout = "row_major"
	ColumnMajor Layout = "column_major"
)

// Candidate is one interpretation of a raw 4x4 matrix.
type Candidate struct {
	Layout   Layout
	Estimate Estimate
}

// confidenceEpsilon treats near-equal confidences as ties.
const confidenceEpsilon = 1e-9

// FromMatrix decodes a detector transformation matrix. The detector may emit
// it row-major or column-major, so both readings are decoded and the one that
// best fits the expected view wins. Readings below MinMatrixConfidence never
// compete. ok is false when the matrix is missing, malformed or degenerate.
func FromMatrix(m []float64, expected landmark.View, p Params) (Estimate, bool) {
	cands, ok := Candidates(m, p)
	if !ok {
		return Estimate{}, false
	}
	best, ok := pick(cands, expected, p.MinMatrixConfidence)
	if !ok {
		return Estimate{}, false
	}
	return best.Estimate, true
}

// Candidates returns the row-major and column-major interpretations of m, in
// that order.
func Candidates(m []float64, p Params) ([]Candidate, bool) {
	if len(m) < 16 {
		return nil, false
	}
	data := make([]float64, 16)
	for i := 0; i < 16; i++ {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			return nil, false
		}
		data[i] = m[i]
	}

	full := mat.NewDense(4, 4, data)
	rowMajor := mat.DenseCopyOf(full.Slice(0, 3, 0, 3))
	colMajor := mat.DenseCopyOf(rowMajor.T())

	return []Candidate{
		{Layout: RowMajor, Estimate: decode(rowMajor, p)},
		{Layout: ColumnMajor, Estimate: decode(colMajor, p)},
	}, true
}

// decode extracts Euler angles and an orthonormality confidence from a 3x3
// rotation block.
func decode(r *mat.Dense, p Params) Estimate {
	r00, r10, r20 := r.At(0, 0), r.At(1, 0), r.At(2, 0)
	r21, r22 := r.At(2, 1), r.At(2, 2)

	sy := math.Sqrt(r00*r00 + r10*r10)
	var yaw, pitch, roll float64
	if sy < p.SingularThreshold {
		yaw = 0
		pitch = math.Atan2(-r20, sy)
		roll = math.Atan2(-r.At(1, 2), r.At(1, 1))
	} else {
		yaw = math.Atan2(r10, r00)
		pitch = math.Atan2(-r20, sy)
		roll = math.Atan2(r21, r22)
	}

	return Classify(
		geometry.Degrees(yaw),
		geometry.Degrees(pitch),
		geometry.Degrees(roll),
		SourceMatrix,
		matrixConfidence(r),
		p,
	)
}

// matrixConfidence scores how close r is to a rotation: the first two rows
// should be orthogonal and the third (forward) row should have unit length.
func matrixConfidence(r *mat.Dense) float64 {
	row0 := mat.Row(nil, 0, r)
	row1 := mat.Row(nil, 1, r)
	row2 := mat.Row(nil, 2, r)

	orthoErr := math.Abs(floats.Dot(row0, row1))
	forward := floats.Norm(row2, 2)
	return geometry.Clamp01(1-2*orthoErr) * geometry.Clamp01(forward)
}

// rank orders candidates for the expected view: valid for the view beats a
// view match, which beats a mismatch.
func rank(e Estimate, expected landmark.View) int {
	if expected != landmark.ViewFront && expected != landmark.ViewSide {
		return 0
	}
	if e.ValidFor(expected) {
		return 2
	}
	if e.View == expected {
		return 1
	}
	return 0
}

// pick returns the best candidate with at least minConfidence. Equal ranks
// go to the higher confidence, then to the earlier candidate.
func pick(cands []Candidate, expected landmark.View, minConfidence float64) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)
	for _, c := range cands {
		if c.Estimate.Confidence < minConfidence {
			continue
		}
		if !found {
			best, found = c, true
			continue
		}
		rb, rc := rank(best.Estimate, expected), rank(c.Estimate, expected)
		if rc > rb || (rc == rb && c.Estimate.Confidence > best.Estimate.Confidence+confidenceEpsilon) {
			best = c
		}
	}
	return best, found
}

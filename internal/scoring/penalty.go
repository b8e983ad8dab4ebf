package scoring

import (
	"facescore/internal/reason"
	"facescore/pkg/geometry"
)

// QualityPenalty accumulates score points to deduct for weak input:
// partial landmark sets, unusable poses, blur and the number of raised
// issues. The total is bounded by MaxQualityPenalty.
func (p Params) QualityPenalty(in Input) float64 {
	var qp float64

	switch n := len(in.Front); {
	case n < p.FrontSparseCount:
		qp += p.FrontSparsePenalty
	case n < p.FrontFullCount:
		qp += p.FrontPartialPenalty
	}
	if n := len(in.Side); n > 0 && n < p.SideSparseCount {
		qp += p.SideSparsePenalty
	}

	if !in.FrontQuality.Pose.ValidFront {
		qp += p.FrontPosePenalty
	}
	if len(in.Side) > 0 {
		sq := in.SideQuality
		switch {
		case sq.ReasonCodes.Has(reason.SideDisabled) || sq.ViewWeight < p.SideMinViewWeight:
			qp += p.SideDisabledPenalty
		case sq.ViewWeight < 1:
			qp += p.ThreeQuarterPenalty * (1 - sq.ViewWeight)
		}
	}

	issues := 0
	for _, codes := range []reason.Set{in.FrontQuality.ReasonCodes, in.SideQuality.ReasonCodes} {
		if codes.Has(reason.Blur) {
			qp += p.BlurPenalty
		}
		issues += len(codes.Filter(reason.SeverityError)) + len(codes.Filter(reason.SeverityWarning))
	}
	qp += min(float64(issues)*p.IssuePenalty, p.MaxIssuePenalty)

	return geometry.Clamp(qp, 0, p.MaxQualityPenalty)
}

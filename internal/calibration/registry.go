package calibration

import (
	"facescore/internal/landmark"
)

// NoMeshIndex marks registry entries without a detector counterpart.
const NoMeshIndex = -1

// Entry declares one named anatomical target for manual calibration.
type Entry struct {
	ID            string
	View          landmark.View
	Label         string
	MeshIndex     int
	Required      bool
	ForceManual   bool
	HairSensitive bool
}

// HasMesh reports whether the entry references a detector mesh index.
func (e Entry) HasMesh() bool {
	return e.MeshIndex >= 0
}

// Registry is an immutable, ordered list of calibration targets.
type Registry struct {
	entries []Entry
	byID    map[string]int
}

// NewRegistry indexes entries. Later duplicates of an ID are ignored.
func NewRegistry(entries []Entry) Registry {
	r := Registry{byID: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, dup := r.byID[e.ID]; dup {
			continue
		}
		r.byID[e.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Entries returns a copy of the entries in registry order.
func (r Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup returns the entry with the given ID.
func (r Registry) Lookup(id string) (Entry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// ForView returns the entries for one view.
func (r Registry) ForView(v landmark.View) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.View == v {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (r Registry) Len() int {
	return len(r.entries)
}

func front(id, label string, mesh int, required bool) Entry {
	return Entry{ID: "front." + id, View: landmark.ViewFront, Label: label, MeshIndex: mesh, Required: required}
}

func side(id, label string, mesh int, required bool) Entry {
	return Entry{ID: "side." + id, View: landmark.ViewSide, Label: label, MeshIndex: mesh, Required: required}
}

func hairline(e Entry) Entry {
	e.ForceManual = true
	e.HairSensitive = true
	return e
}

func manual(e Entry) Entry {
	e.ForceManual = true
	return e
}

var frontEntries = []Entry{
	hairline(front("trichion", "Hairline (trichion)", landmark.Trichion, true)),
	hairline(front("hairline_temple_right", "Right temple hairline", NoMeshIndex, false)),
	hairline(front("hairline_temple_left", "Left temple hairline", NoMeshIndex, false)),
	front("forehead_center", "Forehead centre", landmark.ForeheadCenter, false),
	front("glabella", "Glabella", landmark.Glabella, true),
	front("nasion", "Nasion", landmark.Nasion, true),

	front("brow_inner_right", "Right brow, inner end", landmark.BrowInnerRight, false),
	front("brow_mid_right", "Right brow, middle", landmark.BrowMidRight, true),
	front("brow_peak_right", "Right brow, peak", landmark.BrowPeakRight, false),
	front("brow_outer_right", "Right brow, outer end", landmark.BrowOuterRight, false),
	front("brow_inner_left", "Left brow, inner end", landmark.BrowInnerLeft, false),
	front("brow_mid_left", "Left brow, middle", landmark.BrowMidLeft, true),
	front("brow_peak_left", "Left brow, peak", landmark.BrowPeakLeft, false),
	front("brow_outer_left", "Left brow, outer end", landmark.BrowOuterLeft, false),

	front("eye_outer_right", "Right eye, outer corner", landmark.EyeOuterRight, true),
	front("eye_inner_right", "Right eye, inner corner", landmark.EyeInnerRight, true),
	front("eye_top_right", "Right upper eyelid", landmark.EyeTopRight, false),
	front("eye_bottom_right", "Right lower eyelid", landmark.EyeBottomRight, false),
	front("pupil_right", "Right pupil", landmark.PupilRight, true),
	front("eye_outer_left", "Left eye, outer corner", landmark.EyeOuterLeft, true),
	front("eye_inner_left", "Left eye, inner corner", landmark.EyeInnerLeft, true),
	front("eye_top_left", "Left upper eyelid", landmark.EyeTopLeft, false),
	front("eye_bottom_left", "Left lower eyelid", landmark.EyeBottomLeft, false),
	front("pupil_left", "Left pupil", landmark.PupilLeft, true),

	front("nose_bridge", "Nose bridge", landmark.NoseBridge, false),
	front("nose_dorsum", "Nasal dorsum", landmark.NoseDorsum, false),
	front("nose_tip", "Nose tip", landmark.NoseTip, true),
	front("pronasale", "Pronasale", landmark.Pronasale, false),
	front("subnasale", "Subnasale", landmark.Subnasale, true),
	front("alar_right", "Right nostril wing", landmark.AlarRight, true),
	front("alar_left", "Left nostril wing", landmark.AlarLeft, true),
	front("alar_crease_right", "Right alar crease", landmark.AlarCreaseRight, false),
	front("alar_crease_left", "Left alar crease", landmark.AlarCreaseLeft, false),

	front("labrale_superius", "Upper lip border", landmark.LabraleSuperius, true),
	front("cupid_peak_right", "Right cupid's bow peak", landmark.CupidPeakRight, false),
	front("cupid_peak_left", "Left cupid's bow peak", landmark.CupidPeakLeft, false),
	front("stomion", "Lip meeting point", landmark.Stomion, true),
	front("lower_lip_inner", "Lower lip, inner edge", landmark.LowerLipInner, false),
	front("labrale_inferius", "Lower lip border", landmark.LabraleInferius, true),
	front("mouth_corner_right", "Right mouth corner", landmark.MouthCornerRight, true),
	front("mouth_corner_left", "Left mouth corner", landmark.MouthCornerLeft, true),
	front("labiomental", "Labiomental fold", landmark.Labiomental, false),

	front("pogonion", "Chin front", landmark.Pogonion, false),
	front("menton", "Chin bottom (menton)", landmark.Menton, true),
	front("chin_right", "Right chin edge", landmark.ChinRight, false),
	front("chin_left", "Left chin edge", landmark.ChinLeft, false),
	front("gonion_right", "Right jaw angle", landmark.GonionRight, true),
	front("gonion_left", "Left jaw angle", landmark.GonionLeft, true),
	front("jaw_mid_right", "Right jawline", landmark.JawMidRight, false),
	front("jaw_mid_left", "Left jawline", landmark.JawMidLeft, false),

	front("zygion_right", "Right cheekbone width", landmark.ZygionRight, true),
	front("zygion_left", "Left cheekbone width", landmark.ZygionLeft, true),
	front("cheekbone_right", "Right cheekbone", landmark.CheekboneRight, false),
	front("cheekbone_left", "Left cheekbone", landmark.CheekboneLeft, false),
	front("temple_right", "Right temple", landmark.TempleRight, false),
	front("temple_left", "Left temple", landmark.TempleLeft, false),
}

var sideEntries = []Entry{
	hairline(side("trichion", "Hairline (trichion)", landmark.Trichion, false)),
	side("forehead", "Forehead", landmark.ForeheadCenter, false),
	side("glabella", "Glabella", landmark.Glabella, true),
	side("nasion", "Nasion", landmark.Nasion, true),
	side("nose_bridge", "Nose bridge", landmark.NoseBridge, false),
	side("nose_dorsum", "Nasal dorsum", landmark.NoseDorsum, false),
	side("nose_tip", "Nose tip", landmark.NoseTip, true),
	side("pronasale", "Pronasale", landmark.Pronasale, false),
	side("columella", "Columella", landmark.Columella, false),
	side("subnasale", "Subnasale", landmark.Subnasale, true),
	side("alar_crease", "Alar crease", landmark.AlarRight, true),

	side("labrale_superius", "Upper lip", landmark.LabraleSuperius, true),
	side("stomion", "Lip meeting point", landmark.Stomion, false),
	side("labrale_inferius", "Lower lip", landmark.LabraleInferius, true),
	side("labiomental", "Labiomental fold", landmark.Labiomental, true),
	side("chin_upper", "Upper chin", landmark.ChinUpper, false),
	side("pogonion", "Chin front (pogonion)", landmark.Pogonion, true),
	side("menton", "Chin bottom (menton)", landmark.Menton, true),
	side("mouth_corner", "Mouth corner", landmark.MouthCornerRight, false),

	side("gonion", "Jaw angle (gonion)", landmark.GonionRight, true),
	side("ramus", "Jaw ramus", landmark.RamusRight, false),
	side("tragus", "Ear tragus", landmark.ProfileTragus, true),
	manual(side("porion", "Top of ear canal (porion)", NoMeshIndex, false)),
	manual(side("cervical_point", "Chin-neck junction", NoMeshIndex, false)),
	manual(side("throat", "Throat", NoMeshIndex, false)),

	side("orbitale", "Lower eye socket", landmark.OrbitaleRight, false),
	side("eye_outer", "Eye outer corner", landmark.EyeOuterRight, false),
	side("brow", "Brow", landmark.BrowMidRight, false),
	side("brow_peak", "Brow peak", landmark.BrowPeakRight, false),
	side("cheekbone", "Cheekbone", landmark.CheekboneRight, false),
}

// Default is the fixed registry of front and side calibration targets.
var Default = NewRegistry(append(append([]Entry{}, frontEntries...), sideEntries...))

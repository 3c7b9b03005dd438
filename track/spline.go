// Package track projects the parallel property arrays of a Railroads Online
// save into per-curve and per-switch records, and writes edited records back.
package track

import (
	rrosave "github.com/the10thWiz/rro-track-editor"
)

// Names of the spline properties that together describe the save's curves.
// Each array has either one element per curve or one element per control
// point or segment, with index ranges tying the two together.
const (
	PropSplineLocation        = "SplineLocationArray"
	PropSplineType            = "SplineTypeArray"
	PropSplineControlPoints   = "SplineControlPointsArray"
	PropSplineControlStart    = "SplineControlPointsIndexStartArray"
	PropSplineControlEnd      = "SplineControlPointsIndexEndArray"
	PropSplineSegmentsVisible = "SplineSegmentsVisibilityArray"
	PropSplineVisibleStart    = "SplineVisibilityStartArray"
	PropSplineVisibleEnd      = "SplineVisibilityEndArray"
)

// SplineType identifies the construction kind of a curve.
type SplineType int32

const (
	Track                SplineType = 0
	GroundWork           SplineType = 1
	ConstGroundWork      SplineType = 2
	WoodBridge           SplineType = 3
	TrackBed             SplineType = 4
	StoneGroundWork      SplineType = 5
	SteelBridge          SplineType = 6
	ConstStoneGroundWork SplineType = 7
)

var splineTypeStrings = map[SplineType]string{
	Track:                "Track",
	GroundWork:           "GroundWork",
	ConstGroundWork:      "ConstGroundWork",
	WoodBridge:           "WoodBridge",
	TrackBed:             "TrackBed",
	StoneGroundWork:      "StoneGroundWork",
	SteelBridge:          "SteelBridge",
	ConstStoneGroundWork: "ConstStoneGroundWork",
}

// Valid reports whether the type is a known construction kind.
func (t SplineType) Valid() bool {
	_, ok := splineTypeStrings[t]
	return ok
}

func (t SplineType) String() string {
	if s, ok := splineTypeStrings[t]; ok {
		return s
	}
	return "Invalid"
}

// Curve is one spline of the save: its world location, construction kind,
// control points, and per-segment visibility.
type Curve struct {
	Location Location
	Type     SplineType

	// ControlPoints holds at least two points. Visibility holds one flag per
	// segment between adjacent control points, so its length is one less
	// than the control point count.
	ControlPoints []rrosave.Vector
	Visibility    []bool
}

// Location is the world position of a curve or switch.
type Location = rrosave.Vector

// splineArrays gathers the eight parallel spline properties of a file. All
// lengths are validated against the location array's curve count.
type splineArrays struct {
	locations rrosave.ValueVectorArray
	types     rrosave.ValueIntArray
	points    rrosave.ValueVectorArray
	cpStart   rrosave.ValueIntArray
	cpEnd     rrosave.ValueIntArray
	visible   rrosave.ValueBoolArray
	visStart  rrosave.ValueIntArray
	visEnd    rrosave.ValueIntArray
}

func getArray[T rrosave.Value](f *rrosave.File, name string, want rrosave.Type) (value T, err error) {
	v := f.Get(name)
	if v == nil {
		return value, MissingPropertyError(name)
	}
	value, ok := v.(T)
	if !ok {
		return value, WrongTypeError{Name: name, Expected: want, Got: v.Type()}
	}
	return value, nil
}

func getSplineArrays(f *rrosave.File) (a splineArrays, err error) {
	if a.locations, err = getArray[rrosave.ValueVectorArray](f, PropSplineLocation, rrosave.TypeVectorArray); err != nil {
		return a, err
	}
	if a.types, err = getArray[rrosave.ValueIntArray](f, PropSplineType, rrosave.TypeIntArray); err != nil {
		return a, err
	}
	if a.points, err = getArray[rrosave.ValueVectorArray](f, PropSplineControlPoints, rrosave.TypeVectorArray); err != nil {
		return a, err
	}
	if a.cpStart, err = getArray[rrosave.ValueIntArray](f, PropSplineControlStart, rrosave.TypeIntArray); err != nil {
		return a, err
	}
	if a.cpEnd, err = getArray[rrosave.ValueIntArray](f, PropSplineControlEnd, rrosave.TypeIntArray); err != nil {
		return a, err
	}
	if a.visible, err = getArray[rrosave.ValueBoolArray](f, PropSplineSegmentsVisible, rrosave.TypeBoolArray); err != nil {
		return a, err
	}
	if a.visStart, err = getArray[rrosave.ValueIntArray](f, PropSplineVisibleStart, rrosave.TypeIntArray); err != nil {
		return a, err
	}
	if a.visEnd, err = getArray[rrosave.ValueIntArray](f, PropSplineVisibleEnd, rrosave.TypeIntArray); err != nil {
		return a, err
	}

	n := len(a.locations)
	for _, per := range []struct {
		name string
		got  int
	}{
		{PropSplineType, len(a.types)},
		{PropSplineControlStart, len(a.cpStart)},
		{PropSplineControlEnd, len(a.cpEnd)},
		{PropSplineVisibleStart, len(a.visStart)},
		{PropSplineVisibleEnd, len(a.visEnd)},
	} {
		if per.got != n {
			return a, LengthMismatchError{Name: per.name, Expected: n, Got: per.got}
		}
	}
	return a, nil
}

// Curves projects the file's spline properties into one record per curve.
// Control point and visibility slices alias the file's arrays; copy them
// before mutating if the file must stay unchanged.
func Curves(f *rrosave.File) ([]Curve, error) {
	a, err := getSplineArrays(f)
	if err != nil {
		return nil, err
	}

	curves := make([]Curve, len(a.locations))
	for i := range curves {
		code := SplineType(a.types[i])
		if !code.Valid() {
			return nil, UnknownCodeError{Name: PropSplineType, Code: a.types[i]}
		}

		// Index ranges are inclusive at both ends.
		cs, ce := a.cpStart[i], a.cpEnd[i]
		if cs < 0 || ce < cs || int(ce) >= len(a.points) {
			return nil, IndexError{
				Name:  PropSplineControlPoints,
				Index: i,
				Start: cs,
				End:   ce,
				Len:   len(a.points),
			}
		}
		vs, ve := a.visStart[i], a.visEnd[i]
		if vs < 0 || ve < vs || int(ve) >= len(a.visible) {
			return nil, IndexError{
				Name:  PropSplineSegmentsVisible,
				Index: i,
				Start: vs,
				End:   ve,
				Len:   len(a.visible),
			}
		}
		if int(ce-cs) != int(ve-vs)+1 {
			return nil, RecordError{Index: i, Cause: ErrVisibilityLength}
		}

		curves[i] = Curve{
			Location:      a.locations[i],
			Type:          code,
			ControlPoints: a.points[cs : ce+1],
			Visibility:    a.visible[vs : ve+1],
		}
	}
	return curves, nil
}

// SetCurves replaces the file's spline properties with ones rebuilt from the
// given records. Data arrays are concatenated in record order and index
// ranges reassigned, so records may have been added, removed, or resized.
// The file is only modified if every record validates and every spline
// property already exists.
func SetCurves(f *rrosave.File, curves []Curve) error {
	locations := make(rrosave.ValueVectorArray, len(curves))
	types := make(rrosave.ValueIntArray, len(curves))
	cpStart := make(rrosave.ValueIntArray, len(curves))
	cpEnd := make(rrosave.ValueIntArray, len(curves))
	visStart := make(rrosave.ValueIntArray, len(curves))
	visEnd := make(rrosave.ValueIntArray, len(curves))
	var points rrosave.ValueVectorArray
	var visible rrosave.ValueBoolArray

	for i, c := range curves {
		if !c.Type.Valid() {
			return RecordError{Index: i, Cause: UnknownCodeError{Name: PropSplineType, Code: int32(c.Type)}}
		}
		if len(c.ControlPoints) < 2 {
			return RecordError{Index: i, Cause: ErrShortCurve}
		}
		if len(c.Visibility) != len(c.ControlPoints)-1 {
			return RecordError{Index: i, Cause: ErrVisibilityLength}
		}

		locations[i] = c.Location
		types[i] = int32(c.Type)
		cpStart[i] = int32(len(points))
		points = append(points, c.ControlPoints...)
		cpEnd[i] = int32(len(points) - 1)
		visStart[i] = int32(len(visible))
		visible = append(visible, c.Visibility...)
		visEnd[i] = int32(len(visible) - 1)
	}

	for _, name := range []string{
		PropSplineLocation,
		PropSplineType,
		PropSplineControlPoints,
		PropSplineControlStart,
		PropSplineControlEnd,
		PropSplineSegmentsVisible,
		PropSplineVisibleStart,
		PropSplineVisibleEnd,
	} {
		if f.Get(name) == nil {
			return MissingPropertyError(name)
		}
	}

	f.Set(PropSplineLocation, locations)
	f.Set(PropSplineType, types)
	f.Set(PropSplineControlPoints, points)
	f.Set(PropSplineControlStart, cpStart)
	f.Set(PropSplineControlEnd, cpEnd)
	f.Set(PropSplineSegmentsVisible, visible)
	f.Set(PropSplineVisibleStart, visStart)
	f.Set(PropSplineVisibleEnd, visEnd)
	return nil
}

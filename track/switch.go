package track

import (
	rrosave "github.com/the10thWiz/rro-track-editor"
)

// Names of the switch properties. These arrays are parallel with one element
// per switch.
const (
	PropSwitchType     = "SwitchTypeArray"
	PropSwitchLocation = "SwitchLocationArray"
	PropSwitchRotation = "SwitchRotationArray"
	PropSwitchState    = "SwitchStateArray"
)

// SwitchType identifies the geometry of a switch.
type SwitchType int32

const (
	Crossover         SwitchType = 0
	SwitchLeft        SwitchType = 1
	SwitchLeftMirror  SwitchType = 2
	SwitchRight       SwitchType = 3
	SwitchRightMirror SwitchType = 4
	SwitchWye         SwitchType = 5
	SwitchWyeMirror   SwitchType = 6
)

var switchTypeStrings = map[SwitchType]string{
	Crossover:         "Crossover",
	SwitchLeft:        "SwitchLeft",
	SwitchLeftMirror:  "SwitchLeftMirror",
	SwitchRight:       "SwitchRight",
	SwitchRightMirror: "SwitchRightMirror",
	SwitchWye:         "SwitchWye",
	SwitchWyeMirror:   "SwitchWyeMirror",
}

// Valid reports whether the type is a known switch geometry.
func (t SwitchType) Valid() bool {
	_, ok := switchTypeStrings[t]
	return ok
}

func (t SwitchType) String() string {
	if s, ok := switchTypeStrings[t]; ok {
		return s
	}
	return "Invalid"
}

// Switch is one track switch of the save.
type Switch struct {
	Type     SwitchType
	Location Location
	Rotation rrosave.Rotator

	// State selects which branch the switch is set to.
	State int32
}

// Switches projects the file's switch properties into one record per switch.
func Switches(f *rrosave.File) ([]Switch, error) {
	types, err := getArray[rrosave.ValueIntArray](f, PropSwitchType, rrosave.TypeIntArray)
	if err != nil {
		return nil, err
	}
	locations, err := getArray[rrosave.ValueVectorArray](f, PropSwitchLocation, rrosave.TypeVectorArray)
	if err != nil {
		return nil, err
	}
	rotations, err := getArray[rrosave.ValueRotatorArray](f, PropSwitchRotation, rrosave.TypeRotatorArray)
	if err != nil {
		return nil, err
	}
	states, err := getArray[rrosave.ValueIntArray](f, PropSwitchState, rrosave.TypeIntArray)
	if err != nil {
		return nil, err
	}

	n := len(types)
	for _, per := range []struct {
		name string
		got  int
	}{
		{PropSwitchLocation, len(locations)},
		{PropSwitchRotation, len(rotations)},
		{PropSwitchState, len(states)},
	} {
		if per.got != n {
			return nil, LengthMismatchError{Name: per.name, Expected: n, Got: per.got}
		}
	}

	switches := make([]Switch, n)
	for i := range switches {
		code := SwitchType(types[i])
		if !code.Valid() {
			return nil, UnknownCodeError{Name: PropSwitchType, Code: types[i]}
		}
		switches[i] = Switch{
			Type:     code,
			Location: locations[i],
			Rotation: rotations[i],
			State:    states[i],
		}
	}
	return switches, nil
}

// SetSwitches replaces the file's switch properties with ones rebuilt from
// the given records. The file is only modified if every record validates and
// every switch property already exists.
func SetSwitches(f *rrosave.File, switches []Switch) error {
	types := make(rrosave.ValueIntArray, len(switches))
	locations := make(rrosave.ValueVectorArray, len(switches))
	rotations := make(rrosave.ValueRotatorArray, len(switches))
	states := make(rrosave.ValueIntArray, len(switches))

	for i, s := range switches {
		if !s.Type.Valid() {
			return RecordError{Index: i, Cause: UnknownCodeError{Name: PropSwitchType, Code: int32(s.Type)}}
		}
		types[i] = int32(s.Type)
		locations[i] = s.Location
		rotations[i] = s.Rotation
		states[i] = s.State
	}

	for _, name := range []string{
		PropSwitchType,
		PropSwitchLocation,
		PropSwitchRotation,
		PropSwitchState,
	} {
		if f.Get(name) == nil {
			return MissingPropertyError(name)
		}
	}

	f.Set(PropSwitchType, types)
	f.Set(PropSwitchLocation, locations)
	f.Set(PropSwitchRotation, rotations)
	f.Set(PropSwitchState, states)
	return nil
}

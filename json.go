package rrosave

// ValueToJSONInterface converts a Value to a type that can be encoded with
// the encoding/json package.
func ValueToJSONInterface(value Value) interface{} {
	switch value := value.(type) {
	case ValueNone:
		return nil
	case ValueString:
		return string(value)
	case ValueStringArray:
		return []string(value)
	case ValueIntArray:
		return []int32(value)
	case ValueBoolArray:
		return []bool(value)
	case ValueFloatArray:
		return []float32(value)
	case ValueTextArray:
		list := make([]interface{}, len(value))
		for i, t := range value {
			list[i] = textToJSONInterface(t)
		}
		return list
	case ValueVectorArray:
		list := make([]interface{}, len(value))
		for i, v := range value {
			list[i] = map[string]interface{}{
				"x": v.X,
				"y": v.Y,
				"z": v.Z,
			}
		}
		return list
	case ValueRotatorArray:
		list := make([]interface{}, len(value))
		for i, r := range value {
			list[i] = map[string]interface{}{
				"pitch": r.Pitch,
				"yaw":   r.Yaw,
				"roll":  r.Roll,
			}
		}
		return list
	}
	return nil
}

func textToJSONInterface(t Text) interface{} {
	switch t.Kind {
	case TextSimple:
		return t.Value
	case TextFormatted:
		return map[string]interface{}{
			"first":  t.First,
			"second": t.Second,
		}
	default:
		return nil
	}
}

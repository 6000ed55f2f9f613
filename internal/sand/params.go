package sand

import (
	"strconv"

	"sandtilt/internal/core"
)

// Parameter keys shared with the HUD and terminal info panel.
const (
	ParamAngle  = "angle"
	ParamCells  = "cells"
	ParamEmpty  = "empty"
	ParamFilled = "filled"
	ParamTicks  = "ticks"
)

// Parameters reports the info panel values.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Gravity",
			Params: []core.Parameter{
				intParam(ParamAngle, "Angle", s.angle),
			},
		},
		{
			Name: "Cells",
			Params: []core.Parameter{
				intParam(ParamCells, "Cell Count", s.counts.Total),
				intParam(ParamEmpty, "Empty Cells", s.counts.Empty),
				intParam(ParamFilled, "Filled Cells", s.counts.Filled),
				intParam(ParamTicks, "Ticks", s.ticks),
			},
		},
	}}
}

// ParameterControls exposes the angle slider.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:   ParamAngle,
		Label: "Angle",
		Type:  core.ParamTypeInt,
		Step:  10,
		Min:   MinAngle,
		Max:   MaxAngle,
	}}
}

// SetIntParameter updates an adjustable parameter by key.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamAngle:
		s.SetAngle(value)
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

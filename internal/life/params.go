package life

import "lifepaint/internal/core"

const (
	keyFPS      = "fps"
	keySize     = "size"
	keyLive     = "live"
	maxFPS      = 120
	maxGridSize = 500
)

// Parameters exposes the current settings and telemetry for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	st := w.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam(keySize, "Size", st.Size.W),
				core.IntParam("w", "Width", st.Size.W),
				core.IntParam("h", "Height", st.Size.H),
				core.FloatParam(keyLive, "Live chance", w.src.Chance(), 2),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.IntParam(keyFPS, "FPS cap", st.TargetFPS),
				core.FloatParam("observed_fps", "FPS", st.ObservedFPS, 1),
				core.IntParam("generation", "Generation", st.Generation),
				core.IntParam("population", "Population", st.Population),
				core.BoolParam("paused", "Paused", st.Paused),
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyFPS, Label: "FPS cap", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxFPS, HasMin: true, HasMax: true},
		{Key: keySize, Label: "Grid size", Type: core.ParamTypeInt, Step: 5, Min: 5, Max: maxGridSize, HasMin: true, HasMax: true},
		{Key: keyLive, Label: "Live chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Resizing keeps the grid square.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case keyFPS:
		return w.SetTargetFPS(value) == nil
	case keySize:
		return w.Resize(value, value, core.PatternClear) == nil
	default:
		return false
	}
}

// SetFloatParameter applies a HUD adjustment.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != keyLive {
		return false
	}
	return w.SetLiveChance(value) == nil
}

package panzoom

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Default configuration values.
const (
	DefaultScaleReadyDelay = 1000 * time.Millisecond
	DefaultResetDelay      = 3000 * time.Millisecond
	DefaultDamping         = 0.95
	DefaultDragThreshold   = 5.0 // dp
	DefaultFlingDuration   = 1500 * time.Millisecond
	DefaultResetDuration   = 500 * time.Millisecond
	DefaultPinchMinSpan    = 16.0 // px
	DefaultPinchSpanSlop   = 16.0 // px
)

var (
	// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
	ErrInvalidConfig = errors.New("panzoom: invalid config")
	// ErrSurfaceNotFound is returned by Attach when the host cannot resolve the surface.
	ErrSurfaceNotFound = errors.New("panzoom: surface not found")
)

// Config is the immutable per-attachment configuration. Build one from
// DefaultConfig and override fields; Attach validates it once.
type Config struct {
	// ConsumeTouch gives the gesture's result priority over the previously
	// installed handler when combining their return values.
	ConsumeTouch bool
	// ScaleReadyDelay is how long a stationary pointer waits before the
	// session is promoted to ModeScaling.
	ScaleReadyDelay time.Duration
	// ResetDelay is how long after pointer-down the snap-back starts unless
	// a drag or pinch cancels it first.
	ResetDelay time.Duration
	// Damping multiplies the fling velocity on every tick. Must be in (0, 1).
	Damping float64
	// DragThreshold is the per-axis movement, in dp, that commits a drag.
	DragThreshold float64
	// Density converts dp to pixels. Zero means 1.
	Density float64

	FlingDuration time.Duration
	ResetDuration time.Duration
	// ResetEase shapes the snap-back. Nil means ease.Linear.
	ResetEase ease.TweenFunc

	// PinchMinSpan is the smallest finger span that can start a pinch.
	PinchMinSpan float64
	// PinchSpanSlop is how far the span must change before a pinch starts.
	PinchSpanSlop float64
	// IncrementalFocus moves the pinch anchor to the latest focal point after
	// every update. By default the anchor stays at the focal point recorded
	// when the pinch began.
	IncrementalFocus bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ConsumeTouch:    true,
		ScaleReadyDelay: DefaultScaleReadyDelay,
		ResetDelay:      DefaultResetDelay,
		Damping:         DefaultDamping,
		DragThreshold:   DefaultDragThreshold,
		Density:         1,
		FlingDuration:   DefaultFlingDuration,
		ResetDuration:   DefaultResetDuration,
		ResetEase:       ease.Linear,
		PinchMinSpan:    DefaultPinchMinSpan,
		PinchSpanSlop:   DefaultPinchSpanSlop,
	}
}

// Validate reports the first invariant the configuration breaks. Values are
// rejected rather than clamped so a bad config never yields a session that
// cannot settle.
func (c Config) Validate() error {
	switch {
	case !(c.Damping > 0 && c.Damping < 1):
		return fmt.Errorf("%w: damping %v not in (0, 1)", ErrInvalidConfig, c.Damping)
	case c.DragThreshold < 0:
		return fmt.Errorf("%w: negative drag threshold %v", ErrInvalidConfig, c.DragThreshold)
	case c.Density < 0:
		return fmt.Errorf("%w: negative density %v", ErrInvalidConfig, c.Density)
	case c.ScaleReadyDelay < 0:
		return fmt.Errorf("%w: negative scale-ready delay %v", ErrInvalidConfig, c.ScaleReadyDelay)
	case c.ResetDelay < 0:
		return fmt.Errorf("%w: negative reset delay %v", ErrInvalidConfig, c.ResetDelay)
	case c.FlingDuration <= 0:
		return fmt.Errorf("%w: fling duration %v must be positive", ErrInvalidConfig, c.FlingDuration)
	case c.ResetDuration <= 0:
		return fmt.Errorf("%w: reset duration %v must be positive", ErrInvalidConfig, c.ResetDuration)
	case c.PinchMinSpan < 0 || c.PinchSpanSlop < 0:
		return fmt.Errorf("%w: negative pinch span settings", ErrInvalidConfig)
	}
	return nil
}

// dragThresholdPx returns the drag threshold converted to pixels.
func (c Config) dragThresholdPx() float64 {
	if c.Density == 0 {
		return c.DragThreshold
	}
	return c.DragThreshold * c.Density
}

func (c Config) resetEase() ease.TweenFunc {
	if c.ResetEase == nil {
		return ease.Linear
	}
	return c.ResetEase
}

// configFile is the on-disk JSON form. Durations are in milliseconds and
// omitted fields keep their defaults.
type configFile struct {
	ConsumeTouch     *bool    `json:"consumeTouch,omitempty"`
	ScaleReadyMs     *int64   `json:"scaleReadyDelayMs,omitempty"`
	ResetMs          *int64   `json:"resetDelayMs,omitempty"`
	Damping          *float64 `json:"damping,omitempty"`
	DragThreshold    *float64 `json:"dragThreshold,omitempty"`
	Density          *float64 `json:"density,omitempty"`
	FlingMs          *int64   `json:"flingDurationMs,omitempty"`
	ResetDurationMs  *int64   `json:"resetDurationMs,omitempty"`
	ResetEase        string   `json:"resetEase,omitempty"`
	PinchMinSpan     *float64 `json:"pinchMinSpan,omitempty"`
	PinchSpanSlop    *float64 `json:"pinchSpanSlop,omitempty"`
	IncrementalFocus *bool    `json:"incrementalFocus,omitempty"`
}

// easeByName lists the easing functions a JSON config may name.
var easeByName = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"outCubic":  ease.OutCubic,
	"outExpo":   ease.OutExpo,
}

// LoadConfig parses a JSON configuration on top of DefaultConfig and
// validates the result.
func LoadConfig(jsonData []byte) (Config, error) {
	var f configFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c := DefaultConfig()
	if f.ConsumeTouch != nil {
		c.ConsumeTouch = *f.ConsumeTouch
	}
	if f.ScaleReadyMs != nil {
		c.ScaleReadyDelay = time.Duration(*f.ScaleReadyMs) * time.Millisecond
	}
	if f.ResetMs != nil {
		c.ResetDelay = time.Duration(*f.ResetMs) * time.Millisecond
	}
	if f.Damping != nil {
		c.Damping = *f.Damping
	}
	if f.DragThreshold != nil {
		c.DragThreshold = *f.DragThreshold
	}
	if f.Density != nil {
		c.Density = *f.Density
	}
	if f.FlingMs != nil {
		c.FlingDuration = time.Duration(*f.FlingMs) * time.Millisecond
	}
	if f.ResetDurationMs != nil {
		c.ResetDuration = time.Duration(*f.ResetDurationMs) * time.Millisecond
	}
	if f.ResetEase != "" {
		fn, ok := easeByName[f.ResetEase]
		if !ok {
			return Config{}, fmt.Errorf("%w: unknown reset ease %q", ErrInvalidConfig, f.ResetEase)
		}
		c.ResetEase = fn
	}
	if f.PinchMinSpan != nil {
		c.PinchMinSpan = *f.PinchMinSpan
	}
	if f.PinchSpanSlop != nil {
		c.PinchSpanSlop = *f.PinchSpanSlop
	}
	if f.IncrementalFocus != nil {
		c.IncrementalFocus = *f.IncrementalFocus
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// This file gives hosts embedding bmssp a way to tune the two knobs that
// matter at the service boundary (the capacity clamp and whether to pay for
// Prometheus instrumentation) without recompiling, following
// internal/limiter.Config's envconfig-tagged struct pattern.
package bmssp

import "github.com/kelseyhightower/envconfig"

// Config holds environment-overridable tunables for hosts that embed bmssp
// in a long-running service. Run passes it to BMSSP as an explicit
// argument, and each BMSSP activation reads it: MaxShift for its capacity
// clamp and MetricsEnabled to gate the counters. BaseCase, FindPivots and
// BatchHeap never see it.
type Config struct {
	// MaxShift clamps BatchHeap's M = 2^((level-1)*t) shift. Zero means
	// "use the graph's clamp" (Graph.CapacityShift, defaultCapacityShift
	// unless WithCapacityClamp overrides it).
	MaxShift uint `envconfig:"BMSSP_MAX_SHIFT" default:"0"`

	// MetricsEnabled toggles the Prometheus collectors in metrics.go.
	MetricsEnabled bool `envconfig:"BMSSP_METRICS_ENABLED" default:"false"`
}

// LoadConfig reads Config from the environment with the BMSSP prefix
// (BMSSP_MAX_SHIFT, BMSSP_METRICS_ENABLED), falling back to defaults for
// anything unset.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("BMSSP", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import "runtime"

// ApplyAdaptiveDefaults fills settings left at their zero default with values
// derived from the hardware. Explicit flag or environment values are kept.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateWorkers returns the default batch concurrency.
// Each job is a short, CPU-bound kernel call, so one worker per CPU is
// enough; small machines still get two to overlap parsing with output.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 2:
		return 2
	case numCPU <= 16:
		return numCPU
	default:
		return 16
	}
}

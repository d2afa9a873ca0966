package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fallback when the provider reports no tempo candidates.
const defaultTempoBPM = 120.0

// loadFeatures reads a features JSON document produced by an external
// extractor run.
func loadFeatures(path string) (*FeatureSet, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f FeatureSet
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("features %s: %w", path, err)
	}
	return &f, nil
}

// extractFeatures runs the configured extractor over an audio file and parses
// the features JSON it prints on stdout.
func extractFeatures(cfg *Config, in string) (*FeatureSet, error) {
	if err := mustHave(cfg.ExtractorBin); err != nil {
		return nil, fmt.Errorf("extractor %q not found: %w", cfg.ExtractorBin, err)
	}
	out, err := runCmdOut(cfg.ExtractorBin, in)
	if err != nil {
		return nil, fmt.Errorf("extractor failed: %w", err)
	}
	var f FeatureSet
	if err := json.Unmarshal([]byte(out), &f); err != nil {
		return nil, fmt.Errorf("extractor output: %w", err)
	}
	return &f, nil
}

// isFeaturesFile reports whether the input is already a features document
// rather than an audio file.
func isFeaturesFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// tempo applies the first-candidate policy: multiple estimator candidates
// collapse to the first one, and no candidates means 120 BPM.
func (f *FeatureSet) tempo() float64 {
	if len(f.Tempos) > 0 {
		return f.Tempos[0]
	}
	return defaultTempoBPM
}

func (f *FeatureSet) validate() error {
	if f.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", f.Duration)
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", f.SampleRate)
	}
	if err := checkCurve("onset", f.Onset.Times, f.Onset.Values); err != nil {
		return err
	}
	if len(f.Spec.Times) == 0 {
		return fmt.Errorf("spectrogram has no frames")
	}
	if !strictlyIncreasing(f.Spec.Times) {
		return fmt.Errorf("spectrogram times are not strictly increasing")
	}
	if len(f.Spec.Mag) != len(f.Spec.Freqs) {
		return fmt.Errorf("spectrogram has %d rows for %d frequency bins", len(f.Spec.Mag), len(f.Spec.Freqs))
	}
	for b, row := range f.Spec.Mag {
		if len(row) != len(f.Spec.Times) {
			return fmt.Errorf("spectrogram bin %d has %d frames, want %d", b, len(row), len(f.Spec.Times))
		}
	}
	return nil
}

func checkCurve(name string, times, values []float64) error {
	if len(times) == 0 {
		return fmt.Errorf("%s curve is empty", name)
	}
	if len(times) != len(values) {
		return fmt.Errorf("%s curve has %d times for %d values", name, len(times), len(values))
	}
	if !strictlyIncreasing(times) {
		return fmt.Errorf("%s curve times are not strictly increasing", name)
	}
	return nil
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

package main

import "gonum.org/v1/gonum/stat"

// Reported when the quiet window is exactly silent and the loudness ratio
// would otherwise divide by zero.
const silentBeforeIntensity = 10.0

// detectDrops finds short, sharp bass spikes: frames that clear the global
// percentile threshold while also jumping well above their own trailing
// average. Adjacent detections inside MinDropGap collapse into one.
func detectDrops(cfg *Config, times, bass []float64) []float64 {
	drops := []float64{}
	if len(bass) <= cfg.Lookback+1 {
		return drops
	}
	threshold := percentile(bass, cfg.ThresholdPercentile)
	last := -cfg.MinDropGap
	for i := cfg.Lookback + 1; i < len(bass); i++ {
		t := times[i]
		recent := stat.Mean(bass[i-cfg.Lookback:i], nil)
		if bass[i] > threshold && bass[i] > recent*cfg.SpikeRatio && t-last > cfg.MinDropGap {
			drops = append(drops, round3(t))
			last = t
		}
	}
	return drops
}

// detectBigDrops finds bass-line entries: points where the trailing window is
// quiet, the leading window is loud, and the jump is ratio-significant. This
// is a regime change, not a momentary hit, so the windows span seconds and
// the debounce gap is long.
func detectBigDrops(cfg *Config, times, bass []float64, duration float64) []BigDrop {
	out := []BigDrop{}
	last := -cfg.MinBigDropGap
	for i := cfg.WindowBefore; i < len(bass)-cfg.WindowAfter; i++ {
		t := times[i]
		before := stat.Mean(bass[i-cfg.WindowBefore:i], nil)
		after := stat.Mean(bass[i:i+cfg.WindowAfter], nil)
		if before < cfg.QuietCeiling && after > cfg.LoudFloor && after > before*cfg.MinRatio && t-last > cfg.MinBigDropGap {
			intensity := silentBeforeIntensity
			if before > 0 {
				intensity = round2(after / before)
			}
			out = append(out, BigDrop{
				Time:      round3(t),
				Percent:   round1(t / duration * 100),
				Intensity: intensity,
			})
			last = t
		}
	}
	return out
}

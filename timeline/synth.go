package main

import (
	"math"
	"sort"
)

// A timeline tick is flagged as a drop when a transient drop lies within this
// window of it (wider than the beat window: drops land between ticks).
const dropWindowSec = 0.1

// tickCount returns how many ticks t = k*interval fall in [0, duration).
func tickCount(duration, interval float64) int {
	if duration <= 0 || interval <= 0 {
		return 0
	}
	n := 0
	for float64(n)*interval < duration {
		n++
	}
	return n
}

// synthesizeTimeline resamples every per-frame stream onto the fixed tick
// grid. Values are picked nearest-neighbor rather than interpolated so each
// tick carries an exact upstream sample. onTick may be nil; when set it fires
// once per emitted entry (progress reporting).
func synthesizeTimeline(cfg *Config, duration float64, onset FrameCurve, be bandEnergies, beats, drops []float64, onTick func()) []TimelineEntry {
	n := tickCount(duration, cfg.SampleInterval)
	entries := make([]TimelineEntry, 0, n)
	beatWindow := cfg.SampleInterval / 2
	for k := 0; k < n; k++ {
		t := float64(k) * cfg.SampleInterval
		oi := nearestIndex(onset.Times, t)
		si := nearestIndex(be.times, t)
		entries = append(entries, TimelineEntry{
			T:     round3(t),
			Bass:  round3(be.bass[si]),
			Mid:   round3(be.mid[si]),
			High:  round3(be.high[si]),
			Onset: round3(onset.Values[oi]),
			Beat:  anyWithin(beats, t, beatWindow),
			Drop:  anyWithin(drops, t, dropWindowSec),
		})
		if onTick != nil {
			onTick()
		}
	}
	return entries
}

// nearestIndex returns the index of the time closest to t, preferring the
// earlier index on an exact tie. times must be sorted ascending.
func nearestIndex(times []float64, t float64) int {
	i := sort.SearchFloat64s(times, t)
	if i == 0 {
		return 0
	}
	if i == len(times) {
		return len(times) - 1
	}
	if t-times[i-1] <= times[i]-t {
		return i - 1
	}
	return i
}

// anyWithin reports whether some value in the sorted slice lies strictly
// within tol of t.
func anyWithin(sorted []float64, t, tol float64) bool {
	i := sort.SearchFloat64s(sorted, t-tol)
	for ; i < len(sorted) && sorted[i] < t+tol; i++ {
		if math.Abs(sorted[i]-t) < tol {
			return true
		}
	}
	return false
}

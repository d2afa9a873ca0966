package main

import (
	"testing"
)

func frameTimes(n int, dt float64) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * dt
	}
	return ts
}

func constSlice(n int, v float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = v
	}
	return xs
}

func TestDetectDropsSpikesAndDebounce(t *testing.T) {
	cfg := defaultConfig()
	bass := constSlice(100, 0.1)
	bass[20] = 1.0 // t=1.00
	bass[25] = 1.0 // t=1.25, inside the 2s gap
	bass[62] = 1.0 // t=3.10
	times := frameTimes(len(bass), 0.05)

	drops := detectDrops(cfg, times, bass)
	want := []float64{1.0, 3.1}
	if len(drops) != len(want) {
		t.Fatalf("got %d drops %v, want %v", len(drops), drops, want)
	}
	for i := range want {
		if !almostEqual(drops[i], want[i], 1e-9) {
			t.Errorf("drops[%d] = %f, want %f", i, drops[i], want[i])
		}
	}
	for i := 1; i < len(drops); i++ {
		if drops[i]-drops[i-1] <= cfg.MinDropGap {
			t.Errorf("drops %f and %f violate the %.1fs gap", drops[i-1], drops[i], cfg.MinDropGap)
		}
	}
}

func TestDetectDropsIgnoresGradualRise(t *testing.T) {
	cfg := defaultConfig()
	// Rises steadily and stays loud: never a spike over its trailing average.
	n := 200
	bass := make([]float64, n)
	for i := range bass {
		bass[i] = float64(i) / float64(n-1)
	}
	drops := detectDrops(cfg, frameTimes(n, 0.05), bass)
	if len(drops) != 0 {
		t.Fatalf("gradual rise produced %d drops: %v", len(drops), drops)
	}
}

func TestDetectDropsShortCurve(t *testing.T) {
	cfg := defaultConfig()
	drops := detectDrops(cfg, frameTimes(3, 0.05), []float64{1, 1, 1})
	if len(drops) != 0 {
		t.Fatalf("curve shorter than lookback produced drops: %v", drops)
	}
}

func TestDetectBigDropsSilentBefore(t *testing.T) {
	cfg := defaultConfig()
	// 5s of silence, then sustained 0.5: one bass-line entry, sentinel
	// intensity since the quiet window is exactly zero.
	bass := append(constSlice(100, 0), constSlice(300, 0.5)...)
	times := frameTimes(len(bass), 0.05)

	big := detectBigDrops(cfg, times, bass, 20.0)
	if len(big) != 1 {
		t.Fatalf("got %d big drops %v, want 1", len(big), big)
	}
	d := big[0]
	if !almostEqual(d.Time, 4.65, 1e-9) {
		t.Errorf("time = %f, want 4.65", d.Time)
	}
	if d.Intensity != silentBeforeIntensity {
		t.Errorf("intensity = %f, want sentinel %f", d.Intensity, silentBeforeIntensity)
	}
	if !almostEqual(d.Percent, 23.3, 1e-9) {
		t.Errorf("percent = %f, want 23.3", d.Percent)
	}
}

func TestDetectBigDropsQuietToLoudRatio(t *testing.T) {
	cfg := defaultConfig()
	bass := append(constSlice(100, 0.05), constSlice(300, 0.5)...)
	times := frameTimes(len(bass), 0.05)

	big := detectBigDrops(cfg, times, bass, 20.0)
	if len(big) != 1 {
		t.Fatalf("got %d big drops %v, want 1", len(big), big)
	}
	d := big[0]
	if !almostEqual(d.Time, 4.6, 1e-9) {
		t.Errorf("time = %f, want 4.6", d.Time)
	}
	// Leading window straddles the jump at first trigger: 0.32/0.05.
	if !almostEqual(d.Intensity, 6.4, 1e-9) {
		t.Errorf("intensity = %f, want 6.4", d.Intensity)
	}
	if d.Intensity < cfg.MinRatio {
		t.Errorf("intensity %f below the %.1fx minimum ratio", d.Intensity, cfg.MinRatio)
	}
}

func TestDetectBigDropsGapInvariant(t *testing.T) {
	cfg := defaultConfig()
	cycle := append(constSlice(60, 0), constSlice(240, 0.5)...)
	bass := append(append([]float64{}, cycle...), cycle...)
	times := frameTimes(len(bass), 0.05)

	big := detectBigDrops(cfg, times, bass, 30.0)
	if len(big) != 2 {
		t.Fatalf("got %d big drops %v, want 2", len(big), big)
	}
	for i := 1; i < len(big); i++ {
		if big[i].Time-big[i-1].Time <= cfg.MinBigDropGap {
			t.Errorf("big drops %f and %f violate the %.0fs gap", big[i-1].Time, big[i].Time, cfg.MinBigDropGap)
		}
	}
}

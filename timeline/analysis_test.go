package main

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

// testFeatures builds a 4s synthetic track: steady mids, a bass hit at 1s,
// an onset peak of 2.0 that must normalize to 1.0.
func testFeatures() *FeatureSet {
	n := 80
	times := frameTimes(n, 0.05)

	onset := make([]float64, n)
	for i := range onset {
		onset[i] = 1 + math.Sin(float64(i)/8)
	}
	onset[40] = 2.0

	bass := constSlice(n, 0.2)
	bass[20] = 3.0
	mid := constSlice(n, 1.5)
	high := make([]float64, n)
	for i := range high {
		high[i] = float64(i % 4)
	}

	return &FeatureSet{
		Duration:   4.0,
		SampleRate: 22050,
		Tempos:     []float64{128.26, 64.13},
		BeatTimes:  []float64{0.5, 1.0, 1.5},
		Onset:      FrameCurve{Times: times, Values: onset},
		Spec: Spectrogram{
			Freqs: []float64{110, 440, 4400},
			Times: times,
			Mag:   [][]float64{bass, mid, high},
		},
	}
}

func quietConfig() *Config {
	cfg := defaultConfig()
	cfg.Quiet = true
	return cfg
}

func TestAnalyzeTrackDeterministic(t *testing.T) {
	cfg := quietConfig()
	feats := testFeatures()
	a, err := analyzeTrack(cfg, feats)
	if err != nil {
		t.Fatal(err)
	}
	b, err := analyzeTrack(cfg, feats)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs over the same features differ")
	}
}

func TestAnalyzeTrackAssembly(t *testing.T) {
	cfg := quietConfig()
	res, err := analyzeTrack(cfg, testFeatures())
	if err != nil {
		t.Fatal(err)
	}
	if res.Duration != 4.0 {
		t.Errorf("duration = %f, want 4.0", res.Duration)
	}
	if res.Tempo != 128.3 { // first candidate, rounded to one decimal
		t.Errorf("tempo = %f, want 128.3", res.Tempo)
	}
	if res.BeatCount != 3 || len(res.Beats) != 3 {
		t.Errorf("beatCount = %d, beats = %v, want 3", res.BeatCount, res.Beats)
	}
	if want := tickCount(4.0, cfg.SampleInterval); len(res.Timeline) != want {
		t.Errorf("timeline has %d entries, want %d", len(res.Timeline), want)
	}
	var maxOnset float64
	for _, e := range res.Timeline {
		if e.Onset < 0 || e.Onset > 1 {
			t.Fatalf("onset %f out of [0,1] at t=%f", e.Onset, e.T)
		}
		if e.Onset > maxOnset {
			maxOnset = e.Onset
		}
	}
	if maxOnset != 1.0 {
		t.Errorf("normalized onset peaks at %f, want 1.0", maxOnset)
	}
}

func TestAnalyzeTrackDefaultTempo(t *testing.T) {
	feats := testFeatures()
	feats.Tempos = nil
	res, err := analyzeTrack(quietConfig(), feats)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tempo != defaultTempoBPM {
		t.Errorf("tempo = %f, want default %f", res.Tempo, defaultTempoBPM)
	}
}

func TestAnalyzeTrackRejectsBadFeatures(t *testing.T) {
	cases := map[string]func(*FeatureSet){
		"zero duration":    func(f *FeatureSet) { f.Duration = 0 },
		"bad sample rate":  func(f *FeatureSet) { f.SampleRate = 0 },
		"curve mismatch":   func(f *FeatureSet) { f.Onset.Values = f.Onset.Values[:10] },
		"unsorted times":   func(f *FeatureSet) { f.Onset.Times[5] = f.Onset.Times[4] },
		"ragged mag":       func(f *FeatureSet) { f.Spec.Mag[1] = f.Spec.Mag[1][:3] },
		"bins != mag rows": func(f *FeatureSet) { f.Spec.Freqs = f.Spec.Freqs[:2] },
	}
	for name, mutate := range cases {
		feats := testFeatures()
		mutate(feats)
		if _, err := analyzeTrack(quietConfig(), feats); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestTimelineResultRoundTrip(t *testing.T) {
	res, err := analyzeTrack(quietConfig(), testFeatures())
	if err != nil {
		t.Fatal(err)
	}
	buf, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var back TimelineResult
	if err := json.Unmarshal(buf, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res, &back) {
		t.Fatal("artifact changed across a marshal/unmarshal round trip")
	}
}

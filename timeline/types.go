package main

// FrameCurve is a per-frame scalar series on its own time axis.
// Times are strictly increasing and len(Times) == len(Values).
type FrameCurve struct {
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

// Spectrogram is a magnitude matrix indexed [freqBin][frame], with the
// frequency axis in ascending Hz and the frame-time axis in seconds.
type Spectrogram struct {
	Freqs []float64   `json:"freqs"`
	Times []float64   `json:"times"`
	Mag   [][]float64 `json:"mag"`
}

// FeatureSet is the Audio Feature Provider contract: everything the analysis
// consumes, produced upstream by decode/beat-track/onset/STFT stages.
type FeatureSet struct {
	Duration   float64     `json:"duration"`
	SampleRate int         `json:"sampleRate"`
	Tempos     []float64   `json:"tempos"`
	BeatTimes  []float64   `json:"beatTimes"`
	Onset      FrameCurve  `json:"onset"`
	Spec       Spectrogram `json:"spectrogram"`
}

type ProbeInfo struct {
	FormatName string
	Duration   float64
	SampleRate int
	Channels   int
}

// BigDrop marks a quiet→loud bass regime change (a bass line entering).
type BigDrop struct {
	Time      float64 `json:"time"`
	Percent   float64 `json:"percent"`
	Intensity float64 `json:"intensity"`
}

// TimelineEntry is one fixed-rate tick of the synthesized timeline.
type TimelineEntry struct {
	T     float64 `json:"t"`
	Bass  float64 `json:"bass"`
	Mid   float64 `json:"mid"`
	High  float64 `json:"high"`
	Onset float64 `json:"onset"`
	Beat  bool    `json:"beat"`
	Drop  bool    `json:"drop"`
}

// TimelineResult is the output artifact. Field names are part of the wire
// contract with downstream consumers and must not change.
type TimelineResult struct {
	Duration  float64         `json:"duration"`
	Tempo     float64         `json:"tempo"`
	BeatCount int             `json:"beatCount"`
	Beats     []float64       `json:"beats"`
	Drops     []float64       `json:"drops"`
	BigDrops  []BigDrop       `json:"bigDrops"`
	Timeline  []TimelineEntry `json:"timeline"`
}

type Diff struct {
	AFile, BFile string
	A, B         *TimelineResult
	Delta        map[string]float64
}

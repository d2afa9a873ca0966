package main

type Config struct {
	// IO / tools
	OutPath      string
	Report       string // none|txt|md
	ReportPath   string
	FFprobeBin   string
	ExtractorBin string
	AubioBin     string

	// engines
	BeatEngine string // extractor|aubio

	// transient drops
	Lookback            int
	ThresholdPercentile float64
	SpikeRatio          float64
	MinDropGap          float64

	// sustained drops
	WindowBefore  int
	WindowAfter   int
	QuietCeiling  float64
	LoudFloor     float64
	MinRatio      float64
	MinBigDropGap float64

	// timeline
	SampleInterval float64

	Quiet bool
}

func defaultConfig() *Config {
	return &Config{
		OutPath:      "music_timeline.json",
		Report:       "none",
		ReportPath:   "timeline_report.txt",
		FFprobeBin:   "ffprobe",
		ExtractorBin: "beatline-extract",
		AubioBin:     "aubio",
		BeatEngine:   "extractor",

		Lookback:            5,
		ThresholdPercentile: 85,
		SpikeRatio:          1.5,
		MinDropGap:          2.0,

		WindowBefore:  40, // ~2s of spectrogram frames
		WindowAfter:   20, // ~1s
		QuietCeiling:  0.15,
		LoudFloor:     0.3,
		MinRatio:      3.0,
		MinBigDropGap: 10.0,

		SampleInterval: 0.05,
	}
}

// timeline — turns one music track into a beat/drop event timeline for a
// rhythm-game or visualizer engine.
// Requires: ffprobe + a feature extractor on PATH, or a pre-extracted
// features .json. Optional: aubio (beat/tempo override).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	cfg := defaultConfig()
	outPath := flag.String("o", cfg.OutPath, "output artifact path")
	report := flag.String("report", cfg.Report, "summary report: none|txt|md")
	reportOut := flag.String("report-out", cfg.ReportPath, "summary report path")
	ffprobe := flag.String("ffprobe", cfg.FFprobeBin, "path to ffprobe")
	extractor := flag.String("extractor", cfg.ExtractorBin, "feature extractor command (prints features JSON)")
	aubio := flag.String("aubio", cfg.AubioBin, "path to aubio")
	beatEng := flag.String("beat-engine", cfg.BeatEngine, "beat source: extractor|aubio")
	quiet := flag.Bool("q", false, "suppress progress output")

	lookback := flag.Int("lookback", cfg.Lookback, "frames of trailing average for spike detection")
	thresholdPct := flag.Float64("threshold-percentile", cfg.ThresholdPercentile, "bass percentile a spike must clear")
	spikeRatio := flag.Float64("spike-ratio", cfg.SpikeRatio, "spike vs trailing-average ratio")
	minDropGap := flag.Float64("min-drop-gap", cfg.MinDropGap, "seconds between transient drops")
	windowBefore := flag.Int("window-before", cfg.WindowBefore, "quiet window frames before a big drop")
	windowAfter := flag.Int("window-after", cfg.WindowAfter, "loud window frames after a big drop")
	quietCeiling := flag.Float64("quiet-ceiling", cfg.QuietCeiling, "max quiet-window bass before a big drop")
	loudFloor := flag.Float64("loud-floor", cfg.LoudFloor, "min loud-window bass after a big drop")
	minRatio := flag.Float64("min-ratio", cfg.MinRatio, "min loud/quiet ratio for a big drop")
	minBigDropGap := flag.Float64("min-big-drop-gap", cfg.MinBigDropGap, "seconds between big drops")
	sampleInterval := flag.Float64("sample-interval", cfg.SampleInterval, "timeline tick length, seconds")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "timeline — music beat/drop timeline analyzer\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  timeline [flags] <audio-or-features.json>\n  timeline compare <a.json> <b.json> [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg.OutPath = *outPath
	cfg.Report = strings.ToLower(*report)
	cfg.ReportPath = *reportOut
	cfg.FFprobeBin = *ffprobe
	cfg.ExtractorBin = *extractor
	cfg.AubioBin = *aubio
	cfg.BeatEngine = strings.ToLower(*beatEng)
	cfg.Quiet = *quiet
	cfg.Lookback = *lookback
	cfg.ThresholdPercentile = *thresholdPct
	cfg.SpikeRatio = *spikeRatio
	cfg.MinDropGap = *minDropGap
	cfg.WindowBefore = *windowBefore
	cfg.WindowAfter = *windowAfter
	cfg.QuietCeiling = *quietCeiling
	cfg.LoudFloor = *loudFloor
	cfg.MinRatio = *minRatio
	cfg.MinBigDropGap = *minBigDropGap
	cfg.SampleInterval = *sampleInterval

	switch strings.ToLower(args[0]) {
	case "compare":
		if len(args) < 3 {
			fail("compare: need <a.json> <b.json>")
		}
		a, err := loadTimeline(args[1])
		if err != nil {
			fail("A: %v", err)
		}
		b, err := loadTimeline(args[2])
		if err != nil {
			fail("B: %v", err)
		}
		fmt.Print(renderDiff(cfg, compare(args[1], args[2], a, b)))

	default:
		run(cfg, args[0])
	}
}

func run(cfg *Config, in string) {
	feats, err := gatherFeatures(cfg, in)
	if err != nil {
		fail("%v", err)
	}

	res, err := analyzeTrack(cfg, feats)
	if err != nil {
		fail("analysis failed: %v", err)
	}
	if err := writeTimeline(res, cfg.OutPath); err != nil {
		fail("write: %v", err)
	}
	fmt.Printf("[+] wrote %s\n", cfg.OutPath)
	fmt.Printf("    %.2fs | %.1f BPM | %d beats | %d drops | %d big drops | %d entries\n",
		res.Duration, res.Tempo, res.BeatCount, len(res.Drops), len(res.BigDrops), len(res.Timeline))

	if cfg.Report != "" && cfg.Report != "none" {
		if err := writeReport(cfg, res, cfg.ReportPath); err != nil {
			fail("report: %v", err)
		}
		fmt.Printf("[+] wrote %s\n", cfg.ReportPath)
	}
}

func gatherFeatures(cfg *Config, in string) (*FeatureSet, error) {
	if isFeaturesFile(in) {
		return loadFeatures(in)
	}

	if err := mustHave(cfg.FFprobeBin); err != nil {
		return nil, fmt.Errorf("ffprobe not found: %w", err)
	}
	probe, err := ffprobeInfo(cfg, in)
	if err != nil {
		return nil, err
	}
	if !cfg.Quiet {
		fmt.Printf("[+] %s | %s | %.2fs | %d Hz | %d ch\n", in, probe.FormatName, probe.Duration, probe.SampleRate, probe.Channels)
	}

	feats, err := extractFeatures(cfg, in)
	if err != nil {
		return nil, err
	}

	if cfg.BeatEngine == "aubio" {
		beats, err := aubioBeatTimes(cfg, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[warn] aubio beats unavailable (%v); keeping extractor beats\n", err)
		} else {
			feats.BeatTimes = beats
			if bpm, err := aubioTempo(cfg, in); err == nil {
				feats.Tempos = bpm
			}
		}
	}
	return feats, nil
}

package main

import (
	"fmt"
	"sort"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// analyzeTrack runs the full pipeline over one feature set: band energies,
// both drop detectors, timeline synthesis, final assembly. Pure except for
// progress output; the same features always produce the same result.
func analyzeTrack(cfg *Config, feats *FeatureSet) (*TimelineResult, error) {
	if err := feats.validate(); err != nil {
		return nil, err
	}

	onset := FrameCurve{
		Times:  feats.Onset.Times,
		Values: append([]float64(nil), feats.Onset.Values...),
	}
	normalize(onset.Values)

	be := extractBandEnergies(feats.Spec)

	beats := append([]float64(nil), feats.BeatTimes...)
	sort.Float64s(beats)

	drops := detectDrops(cfg, be.times, be.bass)
	bigDrops := detectBigDrops(cfg, be.times, be.bass, feats.Duration)
	if !cfg.Quiet {
		fmt.Printf("[+] %d beats | %d drops | %d big drops\n", len(beats), len(drops), len(bigDrops))
	}

	var onTick func()
	if !cfg.Quiet {
		p := mpb.New(mpb.WithWidth(64))
		bar := p.AddBar(int64(tickCount(feats.Duration, cfg.SampleInterval)),
			mpb.PrependDecorators(
				decor.Name("Timeline: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
		onTick = bar.Increment
		defer p.Wait()
	}
	timeline := synthesizeTimeline(cfg, feats.Duration, onset, be, beats, drops, onTick)

	rounded := make([]float64, len(beats))
	for i, bt := range beats {
		rounded[i] = round3(bt)
	}

	return &TimelineResult{
		Duration:  round2(feats.Duration),
		Tempo:     round1(feats.tempo()),
		BeatCount: len(rounded),
		Beats:     rounded,
		Drops:     drops,
		BigDrops:  bigDrops,
		Timeline:  timeline,
	}, nil
}

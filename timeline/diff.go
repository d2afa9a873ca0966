package main

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

func compare(aFile, bFile string, a, b *TimelineResult) *Diff {
	d := &Diff{AFile: aFile, BFile: bFile, A: a, B: b, Delta: map[string]float64{}}
	d.Delta["duration_s"] = b.Duration - a.Duration
	d.Delta["tempo_bpm"] = b.Tempo - a.Tempo
	d.Delta["beat_count"] = float64(b.BeatCount - a.BeatCount)
	d.Delta["drop_count"] = float64(len(b.Drops) - len(a.Drops))
	d.Delta["big_drop_count"] = float64(len(b.BigDrops) - len(a.BigDrops))
	d.Delta["timeline_entries"] = float64(len(b.Timeline) - len(a.Timeline))
	return d
}

func renderDiff(cfg *Config, d *Diff) string {
	switch strings.ToLower(cfg.Report) {
	case "json":
		buf, _ := json.MarshalIndent(d.Delta, "", "  ")
		return string(buf) + "\n"
	case "md":
		var b strings.Builder
		fmt.Fprintf(&b, "# Compare: %s ↔ %s\n\n", filepath.Base(d.AFile), filepath.Base(d.BFile))
		fmt.Fprintf(&b, "| Metric | A | B | Δ (B-A) |\n|---|---:|---:|---:|\n")
		fmt.Fprintf(&b, "| Duration (s) | %.2f | %.2f | %+.2f |\n", d.A.Duration, d.B.Duration, d.Delta["duration_s"])
		fmt.Fprintf(&b, "| Tempo (BPM) | %.1f | %.1f | %+.1f |\n", d.A.Tempo, d.B.Tempo, d.Delta["tempo_bpm"])
		fmt.Fprintf(&b, "| Beats | %d | %d | %+.0f |\n", d.A.BeatCount, d.B.BeatCount, d.Delta["beat_count"])
		fmt.Fprintf(&b, "| Drops | %d | %d | %+.0f |\n", len(d.A.Drops), len(d.B.Drops), d.Delta["drop_count"])
		fmt.Fprintf(&b, "| Big drops | %d | %d | %+.0f |\n", len(d.A.BigDrops), len(d.B.BigDrops), d.Delta["big_drop_count"])
		fmt.Fprintf(&b, "| Entries | %d | %d | %+.0f |\n", len(d.A.Timeline), len(d.B.Timeline), d.Delta["timeline_entries"])
		return b.String()
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "COMPARE: %s vs %s\n\n", d.AFile, d.BFile)
		for _, k := range []string{"duration_s", "tempo_bpm", "beat_count", "drop_count", "big_drop_count", "timeline_entries"} {
			if v, ok := d.Delta[k]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
				fmt.Fprintf(&b, "%-18s : %+8.3f\n", k, v)
			}
		}
		return b.String()
	}
}

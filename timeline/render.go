package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// writeTimeline writes the output artifact. Nothing is written unless the
// whole analysis succeeded, so a failed run leaves no partial file behind.
func writeTimeline(res *TimelineResult, path string) error {
	buf, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

func loadTimeline(path string) (*TimelineResult, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var res TimelineResult
	if err := json.Unmarshal(buf, &res); err != nil {
		return nil, fmt.Errorf("timeline %s: %w", path, err)
	}
	return &res, nil
}

func writeReport(cfg *Config, res *TimelineResult, path string) error {
	var s string
	switch strings.ToLower(cfg.Report) {
	case "md":
		s = renderMD(res)
	default:
		s = renderTXT(res)
	}
	return os.WriteFile(path, []byte(s), 0644)
}

func renderTXT(res *TimelineResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Duration: %.2fs | Tempo: %.1f BPM | Beats: %d\n", res.Duration, res.Tempo, res.BeatCount)
	fmt.Fprintf(&b, "Timeline: %d entries @ %d/s\n", len(res.Timeline), entriesPerSecond(res))
	if len(res.Drops) > 0 {
		fmt.Fprintf(&b, "\nDrops:\n")
		for _, d := range res.Drops {
			fmt.Fprintf(&b, "  %8.3fs\n", d)
		}
	}
	if len(res.BigDrops) > 0 {
		fmt.Fprintf(&b, "\nBig drops:\n")
		for _, d := range res.BigDrops {
			fmt.Fprintf(&b, "  %8.3fs (%5.1f%%) intensity %.2fx\n", d.Time, d.Percent, d.Intensity)
		}
	}
	return b.String()
}

func renderMD(res *TimelineResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Timeline\n\n")
	fmt.Fprintf(&b, "- Duration: `%.2fs`\n- Tempo: `%.1f BPM`\n- Beats: `%d`\n- Entries: `%d`\n\n",
		res.Duration, res.Tempo, res.BeatCount, len(res.Timeline))
	if len(res.Drops) > 0 {
		fmt.Fprintf(&b, "## Drops\n\n")
		for _, d := range res.Drops {
			fmt.Fprintf(&b, "- `%.3fs`\n", d)
		}
		fmt.Fprintf(&b, "\n")
	}
	if len(res.BigDrops) > 0 {
		fmt.Fprintf(&b, "## Big drops\n\n| Time (s) | Position | Intensity |\n|---:|---:|---:|\n")
		for _, d := range res.BigDrops {
			fmt.Fprintf(&b, "| %.3f | %.1f%% | %.2fx |\n", d.Time, d.Percent, d.Intensity)
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.String()
}

func entriesPerSecond(res *TimelineResult) int {
	if len(res.Timeline) < 2 {
		return 0
	}
	step := res.Timeline[1].T - res.Timeline[0].T
	if step <= 0 {
		return 0
	}
	return int(1/step + 0.5)
}

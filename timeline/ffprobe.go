package main

import (
	"encoding/json"
	"fmt"
)

// ffprobeInfo sanity-probes the audio input before the extractor runs, so a
// missing or non-audio file fails fast with a useful message.
func ffprobeInfo(cfg *Config, in string) (ProbeInfo, error) {
	args := []string{"-v", "error", "-show_format", "-show_streams", "-of", "json", in}
	out, err := runCmd(cfg.FFprobeBin, args...)
	if err != nil {
		return ProbeInfo{}, fmt.Errorf("ffprobe: %v", err)
	}
	type ffFmt struct {
		Format struct {
			FormatName string `json:"format_name"`
			Duration   string `json:"duration"`
		} `json:"format"`
		Streams []struct {
			CodecType  string `json:"codec_type"`
			SampleRate string `json:"sample_rate"`
			Channels   int    `json:"channels"`
		} `json:"streams"`
	}
	var ff ffFmt
	if err := json.Unmarshal([]byte(out), &ff); err != nil {
		return ProbeInfo{}, err
	}
	p := ProbeInfo{
		FormatName: ff.Format.FormatName,
		Duration:   parseFloat(ff.Format.Duration),
	}
	for _, s := range ff.Streams {
		if s.CodecType == "audio" {
			p.SampleRate = parseInt(s.SampleRate)
			p.Channels = s.Channels
			break
		}
	}
	if p.SampleRate == 0 {
		return p, fmt.Errorf("no audio stream in %s", in)
	}
	if p.Duration <= 0 {
		return p, fmt.Errorf("zero-duration track %s", in)
	}
	return p, nil
}

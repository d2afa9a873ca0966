package main

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Optional beat engine: `aubio beat` / `aubio tempo` replace the extractor's
// beat grid when -beat-engine=aubio.

// aubioBeatTimes parses `aubio beat` output, one timestamp per line.
func aubioBeatTimes(cfg *Config, in string) ([]float64, error) {
	if err := mustHave(cfg.AubioBin); err != nil {
		return nil, errors.New("aubio not found")
	}
	out, err := runCmd(cfg.AubioBin, "beat", "-i", in)
	if err != nil && out == "" {
		return nil, fmt.Errorf("aubio beat failed: %v", err)
	}
	var beats []float64
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if v, err := strconv.ParseFloat(strings.Fields(line)[0], 64); err == nil {
			beats = append(beats, v)
		}
	}
	if len(beats) == 0 {
		return nil, fmt.Errorf("no beats parsed")
	}
	sort.Float64s(beats)
	return beats, nil
}

// aubioTempo returns the BPM candidates `aubio tempo` reports, in print order.
func aubioTempo(cfg *Config, in string) ([]float64, error) {
	if err := mustHave(cfg.AubioBin); err != nil {
		return nil, errors.New("aubio not found")
	}
	out, err := runCmd(cfg.AubioBin, "tempo", "-i", in)
	if err != nil && out == "" {
		return nil, fmt.Errorf("aubio tempo failed: %v", err)
	}
	re := regexp.MustCompile(`([0-9]+(\.[0-9]+)?)\s*bpm`)
	var vals []float64
	sc := bufio.NewScanner(strings.NewReader(strings.ToLower(out)))
	for sc.Scan() {
		if m := re.FindStringSubmatch(sc.Text()); len(m) >= 2 {
			vals = append(vals, parseFloat(m[1]))
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("no bpm parsed")
	}
	return vals, nil
}

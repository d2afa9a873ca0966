package main

// Band edges in Hz. Bass [0,250), mid [250,2000), high [2000,∞).
const (
	bassHiHz = 250.0
	midHiHz  = 2000.0
)

// bandEnergies are the three normalized per-frame energy curves, all on the
// spectrogram's frame-time axis.
type bandEnergies struct {
	times []float64
	bass  []float64
	mid   []float64
	high  []float64
}

// extractBandEnergies collapses the spectrogram into mean magnitude per band
// per frame, then normalizes each band to its own peak.
func extractBandEnergies(spec Spectrogram) bandEnergies {
	n := len(spec.Times)
	be := bandEnergies{
		times: spec.Times,
		bass:  make([]float64, n),
		mid:   make([]float64, n),
		high:  make([]float64, n),
	}
	var bassBins, midBins, highBins int
	for b, row := range spec.Mag {
		var dst []float64
		switch f := spec.Freqs[b]; {
		case f < bassHiHz:
			dst = be.bass
			bassBins++
		case f < midHiHz:
			dst = be.mid
			midBins++
		default:
			dst = be.high
			highBins++
		}
		for i, v := range row {
			dst[i] += v
		}
	}
	scaleBy(be.bass, bassBins)
	scaleBy(be.mid, midBins)
	scaleBy(be.high, highBins)
	normalize(be.bass)
	normalize(be.mid)
	normalize(be.high)
	return be
}

func scaleBy(xs []float64, bins int) {
	if bins == 0 {
		return
	}
	inv := 1 / float64(bins)
	for i := range xs {
		xs[i] *= inv
	}
}

// normalize divides xs by its maximum in place. An all-zero curve is left
// untouched so a silent band never divides by zero.
func normalize(xs []float64) {
	var max float64
	for _, v := range xs {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return
	}
	for i := range xs {
		xs[i] /= max
	}
}

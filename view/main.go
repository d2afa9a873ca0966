// view — plays back a saved music timeline: band energy bars, beat flashes
// and drop markers, with a seekable cursor. Companion to the timeline tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	windowW = 960
	windowH = 540

	stripH  = 96
	marginX = 24
)

var (
	bgColor    = color.RGBA{16, 17, 22, 255}
	panelColor = color.RGBA{28, 30, 38, 255}
	bassColor  = color.RGBA{235, 94, 70, 255}
	midColor   = color.RGBA{246, 201, 68, 255}
	highColor  = color.RGBA{86, 196, 235, 255}
	onsetColor = color.RGBA{200, 200, 210, 255}
	beatColor  = color.RGBA{255, 255, 255, 60}
	dropColor  = color.RGBA{246, 201, 68, 255}
	bigColor   = color.RGBA{235, 64, 52, 255}
	cursorCol  = color.RGBA{240, 240, 240, 255}
)

type BigDrop struct {
	Time      float64 `json:"time"`
	Percent   float64 `json:"percent"`
	Intensity float64 `json:"intensity"`
}

type TimelineEntry struct {
	T     float64 `json:"t"`
	Bass  float64 `json:"bass"`
	Mid   float64 `json:"mid"`
	High  float64 `json:"high"`
	Onset float64 `json:"onset"`
	Beat  bool    `json:"beat"`
	Drop  bool    `json:"drop"`
}

type TimelineResult struct {
	Duration  float64         `json:"duration"`
	Tempo     float64         `json:"tempo"`
	BeatCount int             `json:"beatCount"`
	Beats     []float64       `json:"beats"`
	Drops     []float64       `json:"drops"`
	BigDrops  []BigDrop       `json:"bigDrops"`
	Timeline  []TimelineEntry `json:"timeline"`
}

type viewer struct {
	res      *TimelineResult
	interval float64
	clock    float64
	playing  bool
	flash    float64 // beat flash decay, 0..1
}

func newViewer(res *TimelineResult) *viewer {
	v := &viewer{res: res, interval: 0.05}
	if len(res.Timeline) >= 2 {
		v.interval = res.Timeline[1].T - res.Timeline[0].T
	}
	return v
}

func (v *viewer) entry() TimelineEntry {
	if len(v.res.Timeline) == 0 {
		return TimelineEntry{}
	}
	i := int(v.clock / v.interval)
	if i < 0 {
		i = 0
	}
	if i >= len(v.res.Timeline) {
		i = len(v.res.Timeline) - 1
	}
	return v.res.Timeline[i]
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.playing = !v.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		v.clock = 0
	}
	dt := 1.0 / float64(ebiten.TPS())
	// held arrows scrub at 5x real time
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.clock += 5 * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.clock -= 5 * dt
	}
	if v.playing {
		v.clock += dt
	}
	if v.clock < 0 {
		v.clock = 0
	}
	if v.clock >= v.res.Duration {
		v.clock = v.res.Duration
		v.playing = false
	}
	if v.entry().Beat {
		v.flash = 1
	} else if v.flash > 0 {
		v.flash -= 4 * dt
		if v.flash < 0 {
			v.flash = 0
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	v.drawBars(screen)
	v.drawStrip(screen)
	if v.flash > 0 {
		a := uint8(float64(beatColor.A) * v.flash)
		ebitenutil.DrawRect(screen, 0, 0, windowW, 6, color.RGBA{255, 255, 255, a})
	}
	e := v.entry()
	marker := " "
	if e.Drop {
		marker = "DROP"
	}
	msg := fmt.Sprintf("%7.2fs / %.2fs | %.1f BPM | %d beats | %d drops | %d big drops  %s",
		v.clock, v.res.Duration, v.res.Tempo, v.res.BeatCount, len(v.res.Drops), len(v.res.BigDrops), marker)
	ebitenutil.DebugPrintAt(screen, msg, marginX, windowH-stripH-36)
	ebitenutil.DebugPrintAt(screen, "space: play/pause | arrows: seek | home: restart", marginX, windowH-stripH-20)
}

func (v *viewer) drawBars(screen *ebiten.Image) {
	e := v.entry()
	top := 40.0
	maxH := float64(windowH-stripH) - 120
	barW := 120.0
	gap := 60.0
	x := float64(marginX) + 40

	bars := []struct {
		label string
		val   float64
		col   color.RGBA
	}{
		{"bass", e.Bass, bassColor},
		{"mid", e.Mid, midColor},
		{"high", e.High, highColor},
		{"onset", e.Onset, onsetColor},
	}
	for _, bar := range bars {
		h := bar.val * maxH
		ebitenutil.DrawRect(screen, x, top, barW, maxH, panelColor)
		ebitenutil.DrawRect(screen, x, top+maxH-h, barW, h, bar.col)
		ebitenutil.DebugPrintAt(screen, bar.label, int(x), int(top+maxH)+8)
		x += barW + gap
	}
}

// drawStrip renders the whole track as one bass-energy overview with drop and
// big-drop markers and the play cursor.
func (v *viewer) drawStrip(screen *ebiten.Image) {
	y := float64(windowH - stripH)
	w := float64(windowW - 2*marginX)
	ebitenutil.DrawRect(screen, float64(marginX), y, w, stripH-16, panelColor)
	n := len(v.res.Timeline)
	if n == 0 || v.res.Duration <= 0 {
		return
	}
	cols := int(w)
	for c := 0; c < cols; c++ {
		i := c * n / cols
		h := v.res.Timeline[i].Bass * float64(stripH-20)
		ebitenutil.DrawRect(screen, float64(marginX+c), y+float64(stripH-18)-h, 1, h, color.RGBA{90, 96, 120, 255})
	}
	for _, d := range v.res.Drops {
		x := float64(marginX) + d/v.res.Duration*w
		ebitenutil.DrawRect(screen, x, y, 1, stripH-16, dropColor)
	}
	for _, d := range v.res.BigDrops {
		x := float64(marginX) + d.Time/v.res.Duration*w
		ebitenutil.DrawRect(screen, x-1, y, 3, stripH-16, bigColor)
	}
	cx := float64(marginX) + math.Min(v.clock/v.res.Duration, 1)*w
	ebitenutil.DrawRect(screen, cx, y-4, 1, stripH-8, cursorCol)
}

func (v *viewer) Layout(outsideW, outsideH int) (int, int) { return windowW, windowH }

func main() {
	path := flag.String("f", "music_timeline.json", "timeline artifact to view")
	flag.Parse()
	if flag.NArg() > 0 {
		*path = flag.Arg(0)
	}

	buf, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(1)
	}
	var res TimelineResult
	if err := json.Unmarshal(buf, &res); err != nil {
		fmt.Fprintf(os.Stderr, "[-] %s: %v\n", *path, err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle(fmt.Sprintf("timeline view — %s", *path))
	if err := ebiten.RunGame(newViewer(&res)); err != nil {
		fmt.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

func fail(fmtStr string, a ...any) {
	fmt.Fprintf(os.Stderr, "[-] "+fmtStr+"\n", a...)
	os.Exit(1)
}

func mustHave(bin string) error { _, err := exec.LookPath(bin); return err }

func runCmd(bin string, args ...string) (string, error) {
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runCmdOut captures stdout only; stderr chatter must not pollute parseable
// output (the extractor prints its features JSON on stdout).
func runCmdOut(bin string, args ...string) (string, error) {
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	return string(out), err
}

func parseInt(s string) int       { i, _ := strconv.Atoi(strings.TrimSpace(s)); return i }
func parseFloat(s string) float64 { f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64); return f }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }

// percentile returns the p-th percentile (0–100) of xs.
func percentile(xs []float64, p float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return stat.Quantile(p/100, stat.LinInterp, s, nil)
}

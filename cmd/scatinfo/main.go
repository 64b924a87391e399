// Command scatinfo prints small-angle scattering intensity profiles for the
// models in this library.
//
// Usage:
//
//	scatinfo [flags] [model-name ...]
//
// Without arguments it prints profiles for all known models.
//
// Examples:
//
//	scatinfo bcc
//	scatinfo -qmin 0.01 -qmax 0.5 -points 20 cylinder
//	scatinfo -params models.toml bcc lamellar-hg
//	scatinfo -spin 0.95,0.85
//	scatinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-scatter/scatter/analytic"
	"github.com/cwbudde/algo-scatter/scatter/cylinder"
	"github.com/cwbudde/algo-scatter/scatter/paracrystal"
	"github.com/cwbudde/algo-scatter/scatter/polarization"
)

// params mirrors the optional TOML parameter file. Absent sections keep the
// model defaults.
type params struct {
	BCC struct {
		DNN        float64 `toml:"dnn"`
		DFactor    float64 `toml:"d_factor"`
		Radius     float64 `toml:"radius"`
		SLD        float64 `toml:"sld"`
		SolventSLD float64 `toml:"sld_solvent"`
	} `toml:"bcc"`
	Cylinder struct {
		Radius     float64 `toml:"radius"`
		Length     float64 `toml:"length"`
		SLD        float64 `toml:"sld"`
		SolventSLD float64 `toml:"sld_solvent"`
	} `toml:"cylinder"`
	BroadPeak struct {
		PorodScale    float64 `toml:"porod_scale"`
		PorodExp      float64 `toml:"porod_exp"`
		LorentzScale  float64 `toml:"lorentz_scale"`
		LorentzLength float64 `toml:"lorentz_length"`
		PeakPos       float64 `toml:"peak_pos"`
		LorentzExp    float64 `toml:"lorentz_exp"`
	} `toml:"broad_peak"`
	GuinierPorod struct {
		Rg float64 `toml:"rg"`
		S  float64 `toml:"s"`
		M  float64 `toml:"m"`
	} `toml:"guinier_porod"`
	LamellarHG struct {
		TailLength float64 `toml:"tail_length"`
		HeadLength float64 `toml:"head_length"`
		SLD        float64 `toml:"sld"`
		SLDHead    float64 `toml:"sld_head"`
		SolventSLD float64 `toml:"sld_solvent"`
	} `toml:"lamellar_hg"`
}

func defaultParams() params {
	var p params
	p.BCC.DNN = 220
	p.BCC.DFactor = 0.06
	p.BCC.Radius = 40
	p.BCC.SLD = 4
	p.BCC.SolventSLD = 1
	p.Cylinder.Radius = 20
	p.Cylinder.Length = 400
	p.Cylinder.SLD = 4
	p.Cylinder.SolventSLD = 1
	p.BroadPeak.PorodScale = 1e-5
	p.BroadPeak.PorodExp = 3
	p.BroadPeak.LorentzScale = 10
	p.BroadPeak.LorentzLength = 50
	p.BroadPeak.PeakPos = 0.1
	p.BroadPeak.LorentzExp = 2
	p.GuinierPorod.Rg = 60
	p.GuinierPorod.S = 1
	p.GuinierPorod.M = 3
	p.LamellarHG.TailLength = 15
	p.LamellarHG.HeadLength = 10
	p.LamellarHG.SLD = 0.4
	p.LamellarHG.SLDHead = 3.0
	p.LamellarHG.SolventSLD = 6.0
	return p
}

type modelEntry struct {
	name string
	iq   func(p params, q float64) float64
}

var registry = []modelEntry{
	{"bcc", func(p params, q float64) float64 {
		return paracrystal.Iq(q, paracrystal.Params{
			DNN:        p.BCC.DNN,
			DFactor:    p.BCC.DFactor,
			Radius:     p.BCC.Radius,
			SLD:        p.BCC.SLD,
			SolventSLD: p.BCC.SolventSLD,
		})
	}},
	{"cylinder", func(p params, q float64) float64 {
		return cylinder.Iq(q, p.Cylinder.Radius, p.Cylinder.Length, p.Cylinder.SLD, p.Cylinder.SolventSLD)
	}},
	{"broad-peak", func(p params, q float64) float64 {
		return analytic.BroadPeak{
			PorodScale:    p.BroadPeak.PorodScale,
			PorodExp:      p.BroadPeak.PorodExp,
			LorentzScale:  p.BroadPeak.LorentzScale,
			LorentzLength: p.BroadPeak.LorentzLength,
			PeakPos:       p.BroadPeak.PeakPos,
			LorentzExp:    p.BroadPeak.LorentzExp,
		}.Iq(q)
	}},
	{"guinier-porod", func(p params, q float64) float64 {
		return analytic.GuinierPorod{Rg: p.GuinierPorod.Rg, S: p.GuinierPorod.S, M: p.GuinierPorod.M}.Iq(q)
	}},
	{"lamellar-hg", func(p params, q float64) float64 {
		return analytic.LamellarHG{
			TailLength: p.LamellarHG.TailLength,
			HeadLength: p.LamellarHG.HeadLength,
			SLD:        p.LamellarHG.SLD,
			SLDHead:    p.LamellarHG.SLDHead,
			SLDSolvent: p.LamellarHG.SolventSLD,
		}.Iq(q)
	}},
}

func main() {
	qmin := flag.Float64("qmin", 0.001, "lower q bound [1/Ang]")
	qmax := flag.Float64("qmax", 1.0, "upper q bound [1/Ang]")
	points := flag.Int("points", 10, "number of log-spaced q points")
	paramFile := flag.String("params", "", "TOML file with model parameters")
	spin := flag.String("spin", "", "print spin weights for \"in,out\" polarizer/analyzer efficiencies")
	list := flag.Bool("list", false, "list available model names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scatinfo [flags] [model-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints I(q) profiles for small-angle scattering models.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints profiles for all models.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  scatinfo bcc cylinder\n")
		fmt.Fprintf(os.Stderr, "  scatinfo -params models.toml -qmax 0.5 bcc\n")
		fmt.Fprintf(os.Stderr, "  scatinfo -spin 0.95,0.85\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *spin != "" {
		if err := printSpinWeights(*spin); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if flag.NArg() == 0 {
			return
		}
	}

	p := defaultParams()
	if *paramFile != "" {
		if _, err := toml.DecodeFile(*paramFile, &p); err != nil {
			fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", *paramFile, err)
			os.Exit(1)
		}
	}

	if *qmin <= 0 || *qmax <= *qmin || *points < 2 {
		fmt.Fprintf(os.Stderr, "error: need 0 < qmin < qmax and at least 2 points\n")
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching models\n")
		os.Exit(1)
	}

	printProfiles(entries, p, *qmin, *qmax, *points)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []modelEntry {
	byName := make(map[string]modelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []modelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown model %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printProfiles(entries []modelEntry, p params, qmin, qmax float64, points int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "q [1/Ang]\t")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t", e.name)
	}
	fmt.Fprintln(tw)

	step := math.Pow(qmax/qmin, 1/float64(points-1))
	q := qmin
	for i := 0; i < points; i++ {
		fmt.Fprintf(tw, "%.5f\t", q)
		for _, e := range entries {
			fmt.Fprintf(tw, "%.5e\t", e.iq(p, q))
		}
		fmt.Fprintln(tw)
		q *= step
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSpinWeights(spec string) error {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return fmt.Errorf("spin spec %q: want \"in,out\"", spec)
	}

	var in, out float64
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%g", &in); err != nil {
		return fmt.Errorf("spin spec %q: %v", spec, err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%g", &out); err != nil {
		return fmt.Errorf("spin spec %q: %v", spec, err)
	}

	w := polarization.Weights(in, out)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tWeight\n")
	fmt.Fprintf(tw, "-------\t------\n")
	fmt.Fprintf(tw, "dd\t%.6f\n", w.DDReal)
	fmt.Fprintf(tw, "uu\t%.6f\n", w.UUReal)
	fmt.Fprintf(tw, "du\t%.6f\n", w.DUReal)
	fmt.Fprintf(tw, "ud\t%.6f\n", w.UDReal)

	return tw.Flush()
}

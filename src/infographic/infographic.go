// Package infographic holds the chart content of the quantum computing
// infographic. All datasets are fixed literals; data sourcing is out of
// scope for this tool.
package infographic

import "github.com/zaidi-96/quantum-computing/src/labelwrap"

// Series is a named sequence of values aligned with a chart's labels.
type Series struct {
	Name   string
	Values []float64
}

// Chart bundles the labels and series of one infographic panel. Labels are
// wrapped once at construction; every consumer goes through the
// labelwrap.Label variant so plain and multi-line captions are handled
// uniformly.
type Chart struct {
	Title     string
	Unit      string
	RawLabels []string
	Labels    []labelwrap.Label
	Series    []Series
	// LogScale marks the value axis as logarithmic (base 10).
	LogScale bool
	// AxisMax caps the value axis (radar scores); 0 means derive from data.
	AxisMax float64
}

func build(title, unit string, logScale bool, axisMax float64, labels []string, series ...Series) Chart {
	return Chart{
		Title:     title,
		Unit:      unit,
		RawLabels: labels,
		Labels:    labelwrap.WrapAll(labels, labelwrap.Threshold),
		Series:    series,
		LogScale:  logScale,
		AxisMax:   axisMax,
	}
}

// QubitGrowth is the line chart: physical qubit counts of flagship devices
// per platform and year.
func QubitGrowth() Chart {
	return build(
		"Physical Qubits by Year", "qubits", true, 0,
		[]string{"2016", "2017", "2018", "2019", "2020", "2021", "2022", "2023", "2024"},
		Series{Name: "Superconducting", Values: []float64{5, 20, 50, 53, 65, 127, 433, 1121, 1386}},
		Series{Name: "Trapped Ion", Values: []float64{5, 7, 11, 11, 32, 32, 32, 36, 56}},
	)
}

// PlatformReadiness is the radar chart: qualitative 0-100 scores per
// readiness axis. Several axis captions exceed the wrap threshold and are
// displayed as stacked lines.
func PlatformReadiness() Chart {
	return build(
		"Platform Readiness", "score", false, 100,
		[]string{
			"Scalability",
			"Gate Fidelity",
			"Coherence Time",
			"Room Temp Operation",
			"Cryptography Security",
			"Error Correction",
		},
		Series{Name: "Superconducting", Values: []float64{85, 80, 55, 10, 70, 60}},
		Series{Name: "Trapped Ion", Values: []float64{50, 95, 90, 15, 70, 45}},
	)
}

// AlgorithmSpeedup is the horizontal bar chart: theoretical speedup factors
// over the best known classical approach, on a log axis.
func AlgorithmSpeedup() Chart {
	return build(
		"Theoretical Speedup by Algorithm", "×", true, 0,
		[]string{
			"Shor Factoring",
			"Grover Search",
			"Quantum Simulation",
			"Optimization (QAOA)",
		},
		Series{Name: "Speedup", Values: []float64{1e8, 1e4, 1e6, 1e2}},
	)
}

// Charts returns the three infographic panels in display order.
func Charts() []Chart {
	return []Chart{QubitGrowth(), PlatformReadiness(), AlgorithmSpeedup()}
}

// Package pkg holds the chartkit libraries.
//
// # Overview
//
// chartkit computes the geometry of small dashboard charts (linear gauges,
// number cards, pie and doughnut charts) and drives their count animations
// and text fitting. It draws nothing: layouts are plain values a renderer
// turns into shapes.
//
// The packages, leaves first:
//
//  1. [layout] - plotting area inside margins
//  2. [scale] - linear and band scales, monotonic domains
//  3. [color] - named schemes and key to color encoding
//  4. [format] - locale number formatting and label trimming
//  5. [schedule] - frame and timer scheduling, real and manual
//  6. [animate] - eased numeric counts with precision inference
//  7. [textfit] - scale text to fit a box
//  8. [radial] - pie slices and outside label placement
//  9. [chart] - the gauge, card and pie update cycles
//
// Supporting packages: [config] reads TOML chart definitions, [sink] exports
// layouts as JSON, [errors] carries coded errors, [observability] exposes
// hooks and [buildinfo] the version.
//
// # Data flow
//
//	input (size, values, labels)
//	         ↓
//	    [layout] dimensions  →  [scale] / [radial] geometry
//	         ↓
//	    [color] fills, [format] text
//	         ↓
//	    layout value  →  [schedule] → [textfit] / [animate] refinements
//
// # Quick Start
//
//	sched := schedule.NewLoop()
//	go sched.Run(ctx)
//
//	gauge, _ := chart.NewLinearGauge(sched, chart.WithRange(0, 100))
//	gauge.OnChange(func(l chart.GaugeLayout) { redraw(l) })
//	redraw(gauge.Update(chart.GaugeInput{Width: 400, Height: 120, Value: 42, Units: "%"}))
package pkg

// Package beamgrid is a small simulator for light beams bouncing through a
// grid of mirrors and splitters - and for finding where to shine the beam
// so that it lights up as much of the grid as possible.
//
// 🚀 What is beamgrid?
//
//	A pure-Go library and CLI that brings together:
//		• Grid: validated, immutable rows×cols matrix of '.', '/', '\', '-', '|'
//		• Beam: direction rules, (position, heading) states, cycle-proof traversal
//		• Maximize: every edge entry evaluated on a bounded worker pool
//		• Builder: seeded random layouts and mirror rings for tests & benchmarks
//
// ✨ Why choose beamgrid?
//
//   - Always terminates – each (cell, heading) pair is processed once
//   - No recursion – explicit work-list, constant stack depth
//   - Allocation-free hot path – fixed-size successor sets
//   - Typed errors – unknown symbols report their position and character
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      - Grid type, Parse/ParseReader, sentinel errors
//	beam/      - Direction, Deflect, State, Advance, Traverse, CoverageFrom
//	maximize/  - BoundaryEntries, MaxCoverage
//	builder/   - Random, Loop, Corridor fixtures
//	cmd/beamgrid - `energize` and `maximize` commands
//
// Quick ASCII example:
//
//	.|.      ##.
//	.\-  →   .##
//
// A beam entering top-left heading East is split by '|', the southern half
// turns East on '\' and passes along '-' out of the grid: 4 cells energized.
//
//	go get github.com/katalvlaran/beamgrid
package beamgrid

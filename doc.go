// Package gridsearch is a shortest-path toolkit for 2-D integer grids:
// interchangeable uniform-cost (Dijkstra) and heuristic best-first (A*)
// engines over a pluggable map collaborator.
//
// 🚀 What is gridsearch?
//
//	A small, focused library that brings together:
//		• Search engines: UniformCost (Dijkstra) and Heuristic (A*), one shared contract
//		• Grid maps: rectangular grids with 8-directional movement and tunable costs
//		• Map loading: the MovingAI octile benchmark .map format
//		• Obstacle zones: GeoJSON polygon no-go areas rasterized onto the grid
//
// ✨ Why choose gridsearch?
//
//   - Minimal API – construct an engine, call Search, read cost and expansions
//   - Deterministic – documented tie-breaking for reproducible expansion counts
//   - Pluggable – any type exposing Width/Height/Successors can drive the engines
//   - Pure algorithms – the engines never compute edge costs; the map owns movement
//
// Under the hood, everything is organized under three parts:
//
//	search/         — State, the Map contract, UniformCost and Heuristic engines
//	gridmap/        — Grid collaborator, MovingAI loader, polygon obstacle zones
//	cmd/gridsearch/ — CLI driver: load a map, run one or both engines, print results
//
// Quick ASCII example:
//
//	    S . . . .
//	    . \ . . .
//	    . . \ . .        a 5×5 open grid; four diagonal moves
//	    . . . \ .        at cost 1.5 reach the goal for 6.0 total
//	    . . . . G
//
// Dive into the package docs and example tests for full usage.
//
//	go get github.com/rykarov/gridsearch
package gridsearch

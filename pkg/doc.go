// Package pkg provides the core libraries for wordspin word-cloud rendering.
//
// # Overview
//
// Wordspin turns plain text into packed word-cloud images. The pkg
// directory is organized by pipeline stage plus shared infrastructure:
//
//  1. [text] - Tokenization, stop-word filtering, frequency ranking
//  2. [cloud] - Font sizing, spiral placement engine, run reports
//  3. [palette] - Themes and the filtered, randomized color cycle
//  4. [measure] - Text extent measurement (fixed-ratio and TrueType)
//  5. [render] - SVG, PNG, and JSON output sinks
//  6. [pipeline] - Orchestration (count → layout → render) with caching
//  7. [cache], [config], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow through wordspin:
//
//	Input text
//	     ↓
//	[text] package (tokenize + count + rank)
//	     ↓
//	[cloud] package (size words + spiral placement)
//	     ↓
//	[render] package (SVG/PNG/JSON output)
//
// # Quick Start
//
// Run the full pipeline through a Runner:
//
//	runner := pipeline.NewRunner(nil, nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Text:    document,
//	    Formats: []string{"svg"},
//	})
package pkg

// Package cloud computes word-cloud layouts: it maps word frequencies to
// font sizes and packs the sized words onto a fixed canvas using a radial
// sweep search with exact rectangle collision tests.
//
// # Pipeline position
//
// The package sits between frequency counting ([text.Table]) and
// rendering ([render]). Typical use:
//
//	canvas := cloud.Canvas{Width: 800, Height: 600}
//	scale := cloud.FontScale(canvas, entries)
//	sized, err := cloud.SizeWords(canvas, entries, measurer, scale)
//	if err != nil {
//	    return err
//	}
//	engine := cloud.NewEngine(canvas, cloud.DefaultOptions)
//	placements := engine.Place(sized, colors)
//
// # Placement strategy
//
// Words are placed one at a time in descending size order. For each word
// the engine sweeps concentric rings outward from the canvas center,
// probing candidate angles until it finds a spot where the word's
// bounding box stays inside the canvas and overlaps no committed box.
// The sweep phase rotates between eight start/direction configurations
// so consecutive words do not pile into the same angular region. A word
// whose ring radius exceeds half the canvas's longer side is dropped.
//
// All randomness (orientation, jitter, phase carry-over) comes from a
// single seeded source, so identical inputs and seeds replay the exact
// same layout.
package cloud

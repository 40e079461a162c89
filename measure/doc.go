// Package measure provides text measurers for layout.Tree.
//
// Four measurers are available, each registered under a name:
//
//   - "fixed": layout.FixedAdvance, a deterministic per-rune advance
//   - "cells": terminal cells using East Asian width rules
//   - "gotext": HarfBuzz shaping via go-text/typesetting
//   - "opentype": glyph advances via golang.org/x/image/font/opentype
//
// The shaping measurers default to the Go Regular font. GoText splits
// mixed-direction text into bidi runs and shapes each run separately.
//
//	m, err := measure.New("gotext")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree := layout.NewTree(measure.NewCached(m, 0))
//
// Cached memoizes any measurer; layout passes re-measure the same strings
// every frame.
package measure

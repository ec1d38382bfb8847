// Package testutil provides testing utilities for Wordgrid.
//
// This package is intended for tests, benchmarks and the generate command.
// It provides helpers for generating random grids, planting words into them,
// and deriving query vocabularies that mix present and absent words.
//
// # Random Grid Generation
//
//	rng := testutil.NewRNG(seed)
//	g := rng.RandomGrid(64, 48, testutil.LowercaseAlphabet)
//	placed := rng.PlantWords(g, testutil.Words(), 100)
//
// # Query Vocabulary
//
//	vocab := rng.Vocabulary(g, 6, 50) // every run up to 6 bytes plus 50 random words
package testutil

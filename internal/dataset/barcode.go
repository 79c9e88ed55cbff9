package dataset

import (
	"math/rand/v2"
	"time"
)

// Barcodes are 13-digit integers drawn uniformly from [BarcodeMin, BarcodeMax]
const (
	BarcodeMin int64 = 1000000000000
	BarcodeMax int64 = 9999999999999
)

// BarcodeGenerator draws product barcodes from a seeded PCG source. It is
// not safe for concurrent use; give each export its own generator.
type BarcodeGenerator struct {
	seed uint64
	rng  *rand.Rand
}

// NewBarcodeGenerator creates a generator. Seed 0 seeds from the clock, so
// every run yields different barcodes; any other seed is reproducible.
func NewBarcodeGenerator(seed uint64) *BarcodeGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &BarcodeGenerator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed in use, for logging a run so it can be replayed
func (g *BarcodeGenerator) Seed() uint64 {
	return g.seed
}

// Next returns the next barcode
func (g *BarcodeGenerator) Next() int64 {
	return BarcodeMin + g.rng.Int64N(BarcodeMax-BarcodeMin+1)
}

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarcodeGenerator_Range(t *testing.T) {
	gen := NewBarcodeGenerator(42)
	for i := 0; i < 10000; i++ {
		code := gen.Next()
		assert.GreaterOrEqual(t, code, BarcodeMin)
		assert.LessOrEqual(t, code, BarcodeMax)
	}
}

func TestBarcodeGenerator_SameSeedSameSequence(t *testing.T) {
	a := NewBarcodeGenerator(7)
	b := NewBarcodeGenerator(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
	assert.Equal(t, uint64(7), a.Seed())
}

func TestBarcodeGenerator_DifferentSeeds(t *testing.T) {
	a := NewBarcodeGenerator(1)
	b := NewBarcodeGenerator(2)

	same := 0
	for i := 0; i < 10; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	assert.Less(t, same, 10)
}

func TestBarcodeGenerator_ClockSeed(t *testing.T) {
	gen := NewBarcodeGenerator(0)
	assert.NotZero(t, gen.Seed())
	code := gen.Next()
	assert.GreaterOrEqual(t, code, BarcodeMin)
	assert.LessOrEqual(t, code, BarcodeMax)
}

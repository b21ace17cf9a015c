package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGST(t *testing.T) {
	for _, igst := range []float64{0, 5, 12, 18, 28, 0.5} {
		cgst, sgst := SplitGST(igst)
		assert.Equal(t, cgst, sgst)
		assert.Equal(t, igst, cgst+sgst)
	}
}

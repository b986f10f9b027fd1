package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	c := Crypto{}
	for i := 0; i < 1000; i++ {
		n := c.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestSeeded_Intn(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(1)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(52), b.Intn(52))
	}
}

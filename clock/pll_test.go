package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPLL(t *testing.T) {
	assert := assert.New(t)

	for mhz := 4; mhz < 64; mhz++ {
		pll, err := NewPLL(25*MHZ, mhz*MHZ)
		if !assert.NoError(err, "%d MHz", mhz) {
			continue
		}
		assert.LessOrEqual(pll.Deviation(mhz*MHZ), PLL_MARGIN, "%d MHz", mhz)
		assert.GreaterOrEqual(pll.VcoHz(), float64(PLL_VCO_MIN_HZ))
		assert.LessOrEqual(pll.VcoHz(), float64(PLL_VCO_MAX_HZ))
		assert.GreaterOrEqual(25*MHZ/pll.InputDiv, PLL_PFD_MIN_HZ)
		assert.LessOrEqual(pll.OutputDiv, PLL_DIV_MAX)
	}
}

func TestNewPLL_Exact(t *testing.T) {
	assert := assert.New(t)

	pll, err := NewPLL(25*MHZ, 50*MHZ)
	assert.NoError(err)
	assert.Equal(&PLL{InputHz: 25 * MHZ, InputDiv: 1, FeedbackDiv: 16, OutputDiv: 8}, pll)
}

func TestNewPLL_Approximate(t *testing.T) {
	assert := assert.New(t)

	// 59 MHz has no exact triple from 25 MHz.
	pll, err := NewPLL(25*MHZ, 59*MHZ)
	assert.NoError(err)
	assert.NotEqual(float64(59*MHZ), pll.OutputHz())
	assert.Less(pll.Deviation(59*MHZ), PLL_MARGIN)
}

func TestNewPLL_Unreachable(t *testing.T) {
	assert := assert.New(t)

	_, err := NewPLL(25*MHZ, 1*MHZ)
	assert.ErrorIs(err, ErrPllUnreachable)

	_, err = NewPLL(1*MHZ, 50*MHZ)
	assert.ErrorIs(err, ErrPllUnreachable)

	_, err = NewPLL(25*MHZ, 0)
	assert.ErrorIs(err, ErrPllUnreachable)
}

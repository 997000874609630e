package clock

import (
	"math"
)

// PLL limits. The VCO runs at ref * FeedbackDiv / InputDiv, and the output
// is the VCO divided by OutputDiv.
const (
	PLL_DIV_MAX     = 128
	PLL_PFD_MIN_HZ  = 10_000_000
	PLL_PFD_MAX_HZ  = 400_000_000
	PLL_VCO_MIN_HZ  = 400_000_000
	PLL_VCO_MAX_HZ  = 800_000_000
	PLL_CLKI_MIN_HZ = 8_000_000
	PLL_CLKI_MAX_HZ = 400_000_000
	PLL_MARGIN      = 0.01 // Largest relative output error accepted.
)

// PLL is a divider configuration synthesizing an output from the reference.
type PLL struct {
	InputHz     int // Reference frequency.
	InputDiv    int // Reference divider, 1..128.
	FeedbackDiv int // Feedback multiplier, 1..128.
	OutputDiv   int // VCO output divider, 1..128.
}

// VcoHz returns the VCO frequency, which may be fractional.
func (pll *PLL) VcoHz() float64 {
	return float64(pll.InputHz) * float64(pll.FeedbackDiv) / float64(pll.InputDiv)
}

// OutputHz returns the synthesized frequency.
func (pll *PLL) OutputHz() float64 {
	return pll.VcoHz() / float64(pll.OutputDiv)
}

// NewPLL searches for the divider triple closest to outHz from inHz.
// An exact triple wins immediately, the lowest reference division first;
// otherwise the closest within PLL_MARGIN is used.
func NewPLL(inHz int, outHz int) (pll *PLL, err error) {
	if inHz < PLL_CLKI_MIN_HZ || inHz > PLL_CLKI_MAX_HZ || outHz <= 0 {
		err = ErrPllUnreachable
		return
	}

	best := math.Inf(1)
	for idiv := 1; idiv <= PLL_DIV_MAX; idiv++ {
		pfd := float64(inHz) / float64(idiv)
		if pfd < PLL_PFD_MIN_HZ {
			break
		}
		if pfd > PLL_PFD_MAX_HZ {
			continue
		}
		for fbdiv := 1; fbdiv <= PLL_DIV_MAX; fbdiv++ {
			vco := pfd * float64(fbdiv)
			if vco < PLL_VCO_MIN_HZ {
				continue
			}
			if vco > PLL_VCO_MAX_HZ {
				break
			}
			odiv := int(math.Round(vco / float64(outHz)))
			if odiv < 1 || odiv > PLL_DIV_MAX {
				continue
			}
			candidate := &PLL{
				InputHz:     inHz,
				InputDiv:    idiv,
				FeedbackDiv: fbdiv,
				OutputDiv:   odiv,
			}
			// Exactness is checked in integers; the float is only a ranking.
			if int64(inHz)*int64(fbdiv) == int64(outHz)*int64(idiv)*int64(odiv) {
				pll = candidate
				return
			}
			deviation := math.Abs(candidate.OutputHz()-float64(outHz)) / float64(outHz)
			if deviation < best {
				best = deviation
				pll = candidate
			}
		}
	}

	if pll == nil || best > PLL_MARGIN {
		pll = nil
		err = ErrPllUnreachable
	}

	return
}

// Deviation returns the relative error of the synthesized output against hz.
func (pll *PLL) Deviation(hz int) float64 {
	return math.Abs(pll.OutputHz()-float64(hz)) / float64(hz)
}

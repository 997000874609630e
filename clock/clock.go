// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package clock

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tms9900soc/translate"
)

const (
	MHZ          = 1_000_000 // One megahertz.
	KHZ          = 1_000     // One kilohertz.
	SYS_LIMIT_HZ = 64 * MHZ  // Exclusive upper bound of the system clock.
)

var _clock_defines = map[string]string{
	"MHZ":          fmt.Sprintf("%d", MHZ),
	"KHZ":          fmt.Sprintf("%d", KHZ),
	"SYS_LIMIT_HZ": fmt.Sprintf("%d", SYS_LIMIT_HZ),
}

// Defines returns an iterator over the clock constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_clock_defines)
}

// Reference is the clock supplied by the host platform.
type Reference struct {
	Name     string  // Platform clock name, eg "clk25".
	PeriodNs float64 // Clock period, in nanoseconds.
}

// Hz returns the reference frequency, truncated to whole hertz.
func (ref Reference) Hz() int {
	if ref.PeriodNs <= 0 {
		return 0
	}
	return int(1e9 / ref.PeriodNs)
}

// Domain is the system clock domain. It is immutable once constructed.
type Domain struct {
	Reference Reference // Reference clock the domain derives from.
	Mode      Mode      // Pass-through or synthesized.
	Hz        int       // Effective system clock frequency.
	Pll       *PLL      // PLL configuration, nil in pass-through mode.
}

// Validate checks that hz is usable as a system clock.
func Validate(hz int) (err error) {
	switch {
	case hz <= 0:
		err = ErrFrequencyInvalid
	case hz%MHZ != 0:
		err = ErrFrequencyNotMHz
	case hz >= SYS_LIMIT_HZ:
		err = ErrFrequencyTooHigh
	}

	if err != nil {
		err = &ErrFrequency{Hz: hz, Err: err}
	}

	return
}

// NewDomain derives the system clock from the reference.
// A requestedHz of 0 selects the reference unchanged; any other value
// different from the reference synthesizes the clock with the PLL.
// The effective frequency is validated before the domain is returned.
func NewDomain(ref Reference, requestedHz int) (dom *Domain, err error) {
	refHz := ref.Hz()
	if refHz <= 0 {
		err = ErrReferenceInvalid
		return
	}

	if requestedHz < 0 {
		err = &ErrFrequency{Hz: requestedHz, Err: ErrFrequencyInvalid}
		return
	}

	dom = &Domain{
		Reference: ref,
		Mode:      MODE_PASSTHROUGH,
		Hz:        refHz,
	}

	if requestedHz != 0 && requestedHz != refHz {
		dom.Mode = MODE_PLL
		dom.Hz = requestedHz
	}

	err = Validate(dom.Hz)
	if err != nil {
		dom = nil
		return
	}

	if dom.Mode == MODE_PLL {
		dom.Pll, err = NewPLL(refHz, dom.Hz)
		if err != nil {
			err = &ErrFrequency{Hz: dom.Hz, Err: err}
			dom = nil
			return
		}
	}

	log.Print(dom.Notice())

	return
}

// MHz returns the effective frequency in whole megahertz. This is the
// build-time divisor handed to the serial peripheral.
func (dom *Domain) MHz() int {
	return dom.Hz / MHZ
}

// PeriodNs returns the system clock period in nanoseconds.
func (dom *Domain) PeriodNs() float64 {
	return 1e9 / float64(dom.Hz)
}

// Source names the clock driving the domain.
func (dom *Domain) Source() string {
	if dom.Mode == MODE_PLL {
		return MODE_PLL.String()
	}
	return dom.Reference.Name
}

// Notice returns a human readable description of the clocking mode.
func (dom *Domain) Notice() string {
	return f("clock: %v using %v", translate.Hz(dom.Hz), dom.Source())
}

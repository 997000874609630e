// Package clock manages the single system clock domain of the SoC.
//
// The system clock is either the host platform's reference clock passed
// through unchanged, or a clock synthesized from it by a PLL. Either way the
// effective frequency must be a whole number of megahertz below 64 MHz, as
// the serial peripheral's baud generator is parameterized at build time by
// the frequency in MHz.
package clock

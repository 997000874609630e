// Package soc assembles the bus interconnect of a TMS9900 single board
// computer: clock domain, address decode, boot ROM, working RAM, the
// registered data-in multiplexer and the CRU bridge to the serial
// peripheral.
//
// The processor and the serial peripheral are black boxes supplied by the
// caller through the Processor and cru.Peripheral interfaces. Every call to
// Tick advances the whole network by one clock.
package soc

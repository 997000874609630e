// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package soc

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tms9900soc/bus"
	"github.com/ezrec/tms9900soc/clock"
	"github.com/ezrec/tms9900soc/cru"
	"github.com/ezrec/tms9900soc/datapath"
	"github.com/ezrec/tms9900soc/internal"
	"github.com/ezrec/tms9900soc/memory"
)

const (
	ROM_WORDS  = memory.ROM_WORDS // Boot ROM depth.
	RAM_WORDS  = memory.RAM_WORDS // Working RAM depth.
	DATA_WIDTH = bus.DATA_WIDTH   // Memory word width.
	WAITS      = 8                // Advertised wait states; no stall is inserted.
	IC03       = 4                // Interrupt level presented to the processor.
)

var _soc_defines = map[string]string{
	"ROM_WORDS": fmt.Sprintf("%d", ROM_WORDS),
	"RAM_WORDS": fmt.Sprintf("%d", RAM_WORDS),
	"WAITS":     fmt.Sprintf("%d", WAITS),
}

// Config is the construction-time configuration of the SoC. It is copied
// into the SoC and never changed afterwards.
type Config struct {
	Reference   clock.Reference // Host platform clock.
	RequestedHz int             // System clock request; 0 uses the reference.
	RomImage    []uint16        // Boot monitor image.
	RamInit     []uint16        // Initial RAM contents, zero past the end.
	Verbose     bool            // If set, logs bus activity.

	// Peripheral builds the CRU peripheral for a clock of mhz MHz. If nil,
	// plain CRU bit registers are used.
	Peripheral func(mhz int) cru.Peripheral
}

// Soc is the interconnect state: every register of the network.
type Soc struct {
	Verbose bool // If set, enables verbose logging.

	Config    Config        // Configuration the SoC was built from.
	Clock     *clock.Domain // System clock domain.
	Processor Processor     // Processor core.
	Rom       *memory.Rom   // Boot ROM.
	Ram       *memory.Ram   // Working RAM.
	Mux       datapath.Mux  // Data-in register.
	Bridge    cru.Bridge    // CRU bridge to the peripheral.

	Rst   bool // Synchronous reset input, sampled at each Tick.
	Ticks int  // Clocks since reset.
}

// New builds the network. The clock is validated before the peripheral is
// configured from it; any configuration error aborts construction.
func New(cfg Config, proc Processor) (soc *Soc, err error) {
	if proc == nil {
		err = &ErrConfig{Component: "processor", Err: ErrProcessorMissing}
		return
	}

	dom, err := clock.NewDomain(cfg.Reference, cfg.RequestedHz)
	if err != nil {
		err = &ErrConfig{Component: "clock", Err: err}
		return
	}

	rom, err := memory.NewRom(ROM_WORDS, DATA_WIDTH, cfg.RomImage)
	if err != nil {
		err = &ErrConfig{Component: "rom", Err: err}
		return
	}

	ram, err := memory.NewRam(RAM_WORDS, DATA_WIDTH, DATA_WIDTH, cfg.RamInit)
	if err != nil {
		err = &ErrConfig{Component: "ram", Err: err}
		return
	}

	peripheral := cfg.Peripheral
	if peripheral == nil {
		peripheral = func(mhz int) cru.Peripheral {
			return cru.NewRegisters(mhz)
		}
	}

	soc = &Soc{
		Verbose:   cfg.Verbose,
		Config:    cfg,
		Clock:     dom,
		Processor: proc,
		Rom:       rom,
		Ram:       ram,
	}
	soc.Bridge.Peripheral = peripheral(dom.MHz())
	soc.setVerbose()

	soc.Reset()

	return
}

// Defines returns an iterator over all of the SoC constants.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_soc_defines),
		clock.Defines(),
		bus.Defines(),
		cru.Defines(),
	)
}

func (soc *Soc) setVerbose() {
	soc.Rom.Verbose = soc.Verbose
	soc.Ram.Verbose = soc.Verbose
	soc.Bridge.Verbose = soc.Verbose
}

// Reset applies reset to every register at once. Memory contents survive.
func (soc *Soc) Reset() {
	if soc.Verbose {
		log.Printf("soc: reset")
	}

	soc.Processor.Reset()
	soc.Mux.Reset()
	soc.Rom.Reset()
	soc.Ram.Reset()
	soc.Bridge.Reset()
	soc.Ticks = 0
}

// DataIn returns the processor's data-in port for the current cycle.
func (soc *Soc) DataIn() uint16 {
	return soc.Mux.DataIn
}

// Tick runs one clock. It evaluates the decode and memory ports for the
// current processor outputs, then clocks every register. The returned state
// describes the cycle that just completed.
func (soc *Soc) Tick() (state State) {
	soc.setVerbose()

	out := soc.Processor.Outputs()
	word := bus.Word(out.Addr)
	sel := out.Decode()

	romOutput := soc.Rom.Read(word, sel.Rom)
	ramOutput := soc.Ram.Access(word, sel.ReadRam, sel.WriteRam, out.DataOut)
	cruin := soc.Bridge.Cycle(out.Addr, out.CruClk, out.CruOut)

	soc.Mux.Set(sel.Rom, romOutput, ramOutput)

	state = State{
		Cycle:     soc.Ticks,
		Bus:       out,
		Select:    sel,
		DataIn:    soc.Mux.DataIn,
		CruIn:     cruin,
		RomOutput: romOutput,
		RamOutput: ramOutput,
	}

	if soc.Verbose {
		log.Printf("soc: %v", state)
	}

	// Clock edge.
	if soc.Rst {
		soc.Reset()
		return
	}

	soc.Processor.Clock(ProcessorIn{
		DataIn:   soc.Mux.DataIn,
		CruIn:    cruin,
		Waits:    WAITS,
		CacheHit: true,
		UseReady: true,
		Ready:    true,
		IntReq:   true,
		Hold:     true,
		IC03:     IC03,
	})
	soc.Mux.Clock()
	soc.Ticks++

	return
}

// Tx returns the serial transmit pin. A peripheral without a serial line
// leaves it idle high.
func (soc *Soc) Tx() bool {
	serial, ok := soc.Bridge.Peripheral.(cru.Serial)
	if !ok {
		return true
	}
	return serial.Tx()
}

// Rx drives the serial receive pin.
func (soc *Soc) Rx(level bool) {
	serial, ok := soc.Bridge.Peripheral.(cru.Serial)
	if ok {
		serial.Rx(level)
	}
}

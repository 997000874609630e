package stimulus

import (
	"github.com/ezrec/tms9900soc/soc"
)

// Sample is what the processor sampled at the end of a cycle.
type Sample struct {
	DataIn uint16
	CruIn  bool
}

// Player replays a script as the processor core. Past the end of the
// script it drives idle cycles.
type Player struct {
	Script *Script
	Trace  []Sample // One sample per clock since reset.

	index int
}

var _ soc.Processor = (*Player)(nil)

// NewPlayer creates a player for a script.
func NewPlayer(script *Script) *Player {
	return &Player{Script: script}
}

// Reset rewinds the script.
func (pl *Player) Reset() {
	pl.index = 0
	pl.Trace = nil
}

// Outputs returns the scripted cycle.
func (pl *Player) Outputs() (out soc.ProcessorOut) {
	if !pl.Done() {
		out.Cycle = pl.Script.Cycles[pl.index]
	}
	return
}

// Clock records the sampled inputs and advances the script.
func (pl *Player) Clock(in soc.ProcessorIn) {
	pl.Trace = append(pl.Trace, Sample{DataIn: in.DataIn, CruIn: in.CruIn})
	pl.index++
}

// Done is true once every scripted cycle has been driven.
func (pl *Player) Done() bool {
	return pl.Script == nil || pl.index >= len(pl.Script.Cycles)
}

// Len returns the number of scripted cycles.
func (pl *Player) Len() int {
	if pl.Script == nil {
		return 0
	}
	return len(pl.Script.Cycles)
}

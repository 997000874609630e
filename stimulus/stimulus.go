// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package stimulus drives the SoC from a Starlark test bench in place of the
// processor core.
//
// A script either assigns a list of cycles to the global `cycles`, or
// defines a function `stimulus()` returning one. Each cycle is a dict of
// processor signals; helper builtins build them:
//
//	cycle(addr=0, data_out=0, rd=False, wr=False, cruclk=False, cruout=False)
//	read(addr)            # memory read strobe
//	write(addr, value)    # memory write strobe
//	idle(n=1)             # n cycles with nothing driven
//	ldcr(base, value, count=16)  # CRU output, LSB first, one bit per cycle
//	stcr(base, count=16)         # CRU input, LSB first, one bit per cycle
package stimulus

import (
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tms9900soc/board"
	"github.com/ezrec/tms9900soc/bus"
	"github.com/ezrec/tms9900soc/cru"
)

// Script is a decoded stimulus.
type Script struct {
	Path   string      // Script source.
	Cycles []bus.Cycle // Processor outputs, one per clock.
}

var signals = []string{"addr", "data_out", "rd", "wr", "cruclk", "cruout"}

func predeclared() starlark.StringDict {
	pred := board.Predeclared()
	pred["cycle"] = starlark.NewBuiltin("cycle", builtinCycle)
	pred["read"] = starlark.NewBuiltin("read", builtinRead)
	pred["write"] = starlark.NewBuiltin("write", builtinWrite)
	pred["idle"] = starlark.NewBuiltin("idle", builtinIdle)
	pred["ldcr"] = starlark.NewBuiltin("ldcr", builtinLdcr)
	pred["stcr"] = starlark.NewBuiltin("stcr", builtinStcr)
	return pred
}

func makeCycle(cyc bus.Cycle) *starlark.Dict {
	dict := starlark.NewDict(len(signals))
	dict.SetKey(starlark.String("addr"), starlark.MakeInt(int(cyc.Addr)))
	dict.SetKey(starlark.String("data_out"), starlark.MakeInt(int(cyc.DataOut)))
	dict.SetKey(starlark.String("rd"), starlark.Bool(cyc.Rd))
	dict.SetKey(starlark.String("wr"), starlark.Bool(cyc.Wr))
	dict.SetKey(starlark.String("cruclk"), starlark.Bool(cyc.CruClk))
	dict.SetKey(starlark.String("cruout"), starlark.Bool(cyc.CruOut))
	return dict
}

func word(name string, value int) (w uint16, err error) {
	if value < 0 || value > 0xffff {
		err = &ErrSignal{Signal: name, Value: value}
		return
	}
	w = uint16(value)
	return
}

func builtinCycle(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, dataOut int
	var cyc bus.Cycle
	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"addr?", &addr,
		"data_out?", &dataOut,
		"rd?", &cyc.Rd,
		"wr?", &cyc.Wr,
		"cruclk?", &cyc.CruClk,
		"cruout?", &cyc.CruOut,
	)
	if err != nil {
		return nil, err
	}
	cyc.Addr, err = word("addr", addr)
	if err != nil {
		return nil, err
	}
	cyc.DataOut, err = word("data_out", dataOut)
	if err != nil {
		return nil, err
	}
	return makeCycle(cyc), nil
}

func builtinRead(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return nil, err
	}
	cyc := bus.Cycle{Rd: true}
	cyc.Addr, err = word("addr", addr)
	if err != nil {
		return nil, err
	}
	return makeCycle(cyc), nil
}

func builtinWrite(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &addr, &value)
	if err != nil {
		return nil, err
	}
	cyc := bus.Cycle{Wr: true}
	cyc.Addr, err = word("addr", addr)
	if err != nil {
		return nil, err
	}
	cyc.DataOut, err = word("data_out", value)
	if err != nil {
		return nil, err
	}
	return makeCycle(cyc), nil
}

func builtinIdle(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := 1
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &n)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &ErrSignal{Signal: "n", Value: n}
	}
	list := make([]starlark.Value, n)
	for i := range list {
		list[i] = makeCycle(bus.Cycle{})
	}
	return starlark.NewList(list), nil
}

// cruCycles lays out count CRU bit cycles from base; each bit's address
// advances by one word.
func cruCycles(base int, count int, fill func(n int, cyc *bus.Cycle)) (starlark.Value, error) {
	start, err := word("base", base)
	if err != nil {
		return nil, err
	}
	count = cru.Count(count)
	list := make([]starlark.Value, count)
	for n := range count {
		cyc := bus.Cycle{Addr: start + uint16(2*n)}
		fill(n, &cyc)
		list[n] = makeCycle(cyc)
	}
	return starlark.NewList(list), nil
}

func builtinLdcr(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var base, value int
	count := 16
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "base", &base, "value", &value, "count?", &count)
	if err != nil {
		return nil, err
	}
	data, err := word("value", value)
	if err != nil {
		return nil, err
	}
	var bits []bool
	for bit := range cru.Bits(data, count) {
		bits = append(bits, bit)
	}
	return cruCycles(base, count, func(n int, cyc *bus.Cycle) {
		cyc.CruClk = true
		cyc.CruOut = bits[n]
	})
}

func builtinStcr(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var base int
	count := 16
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "base", &base, "count?", &count)
	if err != nil {
		return nil, err
	}
	return cruCycles(base, count, func(n int, cyc *bus.Cycle) {})
}

// Load reads and decodes a stimulus script.
func Load(path string) (script *Script, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, src)
}

// Parse executes a stimulus script and decodes its cycles.
func Parse(path string, src []byte) (script *Script, err error) {
	cycle := -1
	defer func() {
		if err != nil {
			script = nil
			err = &ErrStimulus{Path: path, Cycle: cycle, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: "stimulus"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, path, src, predeclared())
	if err != nil {
		return
	}

	value, ok := globals["cycles"]
	if !ok {
		fn, isFn := globals["stimulus"].(starlark.Callable)
		if !isFn {
			err = ErrNoCycles
			return
		}
		value, err = starlark.Call(thread, fn, nil, nil)
		if err != nil {
			return
		}
	}

	seq, ok := value.(starlark.Indexable)
	if !ok {
		err = ErrSequenceType
		return
	}

	script = &Script{Path: path}
	for n := range seq.Len() {
		cycle = n
		var cyc bus.Cycle
		cyc, err = decodeCycle(seq.Index(n))
		if err != nil {
			return
		}
		script.Cycles = append(script.Cycles, cyc)
	}

	return
}

func decodeCycle(v starlark.Value) (cyc bus.Cycle, err error) {
	dict, ok := v.(*starlark.Dict)
	if !ok {
		err = ErrCycleType
		return
	}

	for _, item := range dict.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrCycleKey
			return
		}
		switch key {
		case "addr", "data_out":
			var value int
			value, err = starlark.AsInt32(item[1])
			if err != nil {
				return
			}
			var w uint16
			w, err = word(key, value)
			if err != nil {
				return
			}
			if key == "addr" {
				cyc.Addr = w
			} else {
				cyc.DataOut = w
			}
		case "rd", "wr", "cruclk", "cruout":
			on := bool(item[1].Truth())
			switch key {
			case "rd":
				cyc.Rd = on
			case "wr":
				cyc.Wr = on
			case "cruclk":
				cyc.CruClk = on
			case "cruout":
				cyc.CruOut = on
			}
		default:
			err = &ErrSignal{Signal: key, Err: ErrCycleKey}
			return
		}
	}

	return
}

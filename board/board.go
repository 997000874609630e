// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package board loads the construction-time configuration of the SoC from a
// Starlark board description.
//
// A board file assigns globals:
//
//	name            = "colorlight_5a_75b"
//	clock_name      = "clk25"
//	clock_period_ns = 40
//	sys_clk_hz      = 50 * MHZ      # or None for the reference clock
//	rom_image       = "evmbug.bin"  # big-endian words, relative to the file
//	rom             = [0x8300, ...] # inline alternative to rom_image
//	ram_init        = [1, 2, 3]
//
// The SoC constants (MHZ, ROM_WORDS, ...) are predeclared.
package board

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tms9900soc/clock"
	"github.com/ezrec/tms9900soc/memory"
	"github.com/ezrec/tms9900soc/soc"
)

// Board is a host platform plus the SoC options built on it.
type Board struct {
	Name        string          // Board name.
	Reference   clock.Reference // Platform reference clock.
	RequestedHz int             // Requested system clock, 0 for the reference.
	RomImage    []uint16        // Boot monitor image.
	RamInit     []uint16        // Initial RAM contents.
}

// Default returns the Colorlight 5A-75B board: a 25 MHz reference, the
// reference used as system clock, and an empty ROM.
func Default() *Board {
	return &Board{
		Name:      "colorlight_5a_75b",
		Reference: clock.Reference{Name: "clk25", PeriodNs: 40},
	}
}

// Config returns the SoC configuration for the board.
func (brd *Board) Config() soc.Config {
	return soc.Config{
		Reference:   brd.Reference,
		RequestedHz: brd.RequestedHz,
		RomImage:    brd.RomImage,
		RamInit:     brd.RamInit,
	}
}

// Predeclared returns the names every board and stimulus script can use.
func Predeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for key, str := range soc.Defines() {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}
	return pred
}

// Load reads a board file. A rom_image is resolved relative to it.
func Load(path string) (brd *Board, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, src, os.DirFS(filepath.Dir(path)))
}

// Parse executes a board description. Unset fields keep the Default board
// values. filesys resolves rom_image, and may be nil when none is used.
func Parse(path string, src []byte, filesys fs.FS) (brd *Board, err error) {
	defer func() {
		if err != nil {
			brd = nil
			err = &ErrBoard{Path: path, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: "board"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, path, src, Predeclared())
	if err != nil {
		return
	}

	brd = Default()

	if v, ok := globals["name"]; ok {
		brd.Name, err = asString("name", v)
		if err != nil {
			return
		}
	}

	if v, ok := globals["clock_name"]; ok {
		brd.Reference.Name, err = asString("clock_name", v)
		if err != nil {
			return
		}
	}

	if v, ok := globals["clock_period_ns"]; ok {
		brd.Reference.PeriodNs, err = asFloat("clock_period_ns", v)
		if err != nil {
			return
		}
	}

	if v, ok := globals["sys_clk_hz"]; ok && v != starlark.None {
		var hz float64
		hz, err = asFloat("sys_clk_hz", v)
		if err != nil {
			return
		}
		brd.RequestedHz = int(hz)
		if float64(brd.RequestedHz) != hz {
			// Fractional hertz can never be whole MHz.
			err = &ErrField{Field: "sys_clk_hz", Err: &clock.ErrFrequency{Hz: brd.RequestedHz, Err: clock.ErrFrequencyNotMHz}}
			return
		}
	}

	rom, hasRom := globals["rom"]
	image, hasImage := globals["rom_image"]
	switch {
	case hasRom && hasImage:
		err = ErrRomConflict
		return
	case hasRom:
		brd.RomImage, err = asWords("rom", rom)
		if err != nil {
			return
		}
	case hasImage:
		var name string
		name, err = asString("rom_image", image)
		if err != nil {
			return
		}
		brd.RomImage, err = loadImage(filesys, name)
		if err != nil {
			return
		}
	}

	if v, ok := globals["ram_init"]; ok {
		brd.RamInit, err = asWords("ram_init", v)
		if err != nil {
			return
		}
	}

	return
}

func loadImage(filesys fs.FS, name string) (image []uint16, err error) {
	if filesys == nil {
		err = &ErrField{Field: "rom_image", Err: fs.ErrNotExist}
		return
	}

	inf, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return memory.LoadImage(inf)
}

func asString(field string, v starlark.Value) (str string, err error) {
	str, ok := starlark.AsString(v)
	if !ok {
		err = &ErrField{Field: field, Err: ErrFieldType}
	}
	return
}

func asFloat(field string, v starlark.Value) (value float64, err error) {
	switch x := v.(type) {
	case starlark.Int:
		i64, ok := x.Int64()
		if !ok {
			err = &ErrField{Field: field, Err: ErrFieldType}
			return
		}
		value = float64(i64)
	case starlark.Float:
		value = float64(x)
	default:
		err = &ErrField{Field: field, Err: ErrFieldType}
	}
	return
}

// asWords converts a Starlark sequence of ints into 16-bit words.
func asWords(field string, v starlark.Value) (words []uint16, err error) {
	seq, ok := v.(starlark.Indexable)
	if !ok {
		err = &ErrField{Field: field, Err: ErrFieldType}
		return
	}

	words = make([]uint16, seq.Len())
	for n := range words {
		var word int
		word, err = starlark.AsInt32(seq.Index(n))
		if err != nil || word < -0x8000 || word > 0xffff {
			words = nil
			err = &ErrField{Field: field + "[" + strconv.Itoa(n) + "]", Err: ErrFieldType}
			return
		}
		words[n] = uint16(word)
	}

	return
}

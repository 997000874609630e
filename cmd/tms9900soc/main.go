// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// tms9900soc checks, describes and simulates the TMS9900 SoC interconnect.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ezrec/tms9900soc/board"
	"github.com/ezrec/tms9900soc/soc"
	"github.com/ezrec/tms9900soc/stimulus"
)

// Globals are the options shared by every command.
type Globals struct {
	Board   string `name:"board" short:"b" type:"existingfile" help:"Starlark board description."`
	Clk     int    `name:"clk" help:"Override the system clock, in Hz."`
	Verbose bool   `name:"verbose" short:"v" help:"Log bus activity."`
}

var stdout io.Writer = os.Stdout

func (g *Globals) config() (cfg soc.Config, err error) {
	brd := board.Default()
	if len(g.Board) != 0 {
		brd, err = board.Load(g.Board)
		if err != nil {
			return
		}
	}

	cfg = brd.Config()
	if g.Clk != 0 {
		cfg.RequestedHz = g.Clk
	}
	cfg.Verbose = g.Verbose

	return
}

type checkCmd struct{}

// Run builds the network and reports its clocking.
func (c *checkCmd) Run(g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}

	emu, err := soc.New(cfg, &stimulus.Player{})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, emu.Clock.Notice())
	fmt.Fprintf(stdout, "baud parameter: %d\n", emu.Clock.MHz())
	if pll := emu.Clock.Pll; pll != nil {
		fmt.Fprintf(stdout, "pll: in/%d fb*%d out/%d vco %.1f MHz\n",
			pll.InputDiv, pll.FeedbackDiv, pll.OutputDiv, pll.VcoHz()/1e6)
	}

	return nil
}

type mapCmd struct{}

// Run prints the memory and CRU maps.
func (c *mapCmd) Run(g *Globals) error {
	for rg := range soc.Map() {
		fmt.Fprintf(stdout, "%-7v %-8v %04x-%04x %6d x%d\n",
			rg.Space, rg.Name, rg.Start, rg.End, rg.Size, rg.Mirrors())
	}
	return nil
}

type simCmd struct {
	Cycles int    `name:"cycles" short:"n" help:"Cycles to run; default is the script length."`
	Script string `arg:"" type:"existingfile" help:"Starlark stimulus script."`
}

// Run plays a stimulus script and prints one trace line per cycle.
func (c *simCmd) Run(g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}

	script, err := stimulus.Load(c.Script)
	if err != nil {
		return err
	}

	player := stimulus.NewPlayer(script)
	emu, err := soc.New(cfg, player)
	if err != nil {
		return err
	}

	cycles := c.Cycles
	if cycles <= 0 {
		cycles = player.Len()
	}

	for range cycles {
		fmt.Fprintln(stdout, emu.Tick())
	}

	return nil
}

func main() {
	var cli struct {
		Globals

		Check checkCmd `cmd:"" help:"Validate the configuration and print the clocking."`
		Map   mapCmd   `cmd:"" help:"Print the address map."`
		Sim   simCmd   `cmd:"" help:"Run a stimulus script."`
	}

	log.SetFlags(0)

	ctx := kong.Parse(&cli,
		kong.Name("tms9900soc"),
		kong.Description("TMS9900 single board computer interconnect."),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

package stimulus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tms9900soc/bus"
)

func TestParse_Cycles(t *testing.T) {
	assert := assert.New(t)

	src := `
cycles = [
    cycle(addr = 0x8000, data_out = 0x1234, wr = True),
    read(0x8000),
    write(0x8002, 0xbeef),
    {"addr": ADDR_BANK, "rd": True},
] + idle(2)
`
	script, err := Parse("t.star", []byte(src))
	assert.NoError(err)
	assert.Equal([]bus.Cycle{
		{Addr: 0x8000, DataOut: 0x1234, Wr: true},
		{Addr: 0x8000, Rd: true},
		{Addr: 0x8002, DataOut: 0xbeef, Wr: true},
		{Addr: 0x8000, Rd: true},
		{},
		{},
	}, script.Cycles)
}

func TestParse_StimulusFunction(t *testing.T) {
	assert := assert.New(t)

	src := `
def stimulus():
    return [read(2 * n) for n in range(4)]
`
	script, err := Parse("t.star", []byte(src))
	assert.NoError(err)
	assert.Len(script.Cycles, 4)
	assert.Equal(uint16(6), script.Cycles[3].Addr)
}

func TestParse_Cru(t *testing.T) {
	assert := assert.New(t)

	script, err := Parse("t.star", []byte("cycles = ldcr(0x0010, 0b101, 3) + stcr(0x0010, 2)\n"))
	assert.NoError(err)
	assert.Equal([]bus.Cycle{
		{Addr: 0x0010, CruClk: true, CruOut: true},
		{Addr: 0x0012, CruClk: true},
		{Addr: 0x0014, CruClk: true, CruOut: true},
		{Addr: 0x0010},
		{Addr: 0x0012},
	}, script.Cycles)

	script, err = Parse("t.star", []byte("cycles = stcr(0)\n"))
	assert.NoError(err)
	assert.Len(script.Cycles, 16)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		src   string
		err   error
		cycle int
	}){
		{"nothing", "x = 1\n", ErrNoCycles, -1},
		{"not a list", "cycles = 3\n", ErrSequenceType, -1},
		{"not a dict", "cycles = [read(0), 5]\n", ErrCycleType, 1},
		{"unknown key", "cycles = [{\"iaq\": True}]\n", ErrCycleKey, 0},
		{"addr range", "cycles = [{\"addr\": 0x10000}]\n", ErrSignalRange, 0},
		{"builtin range", "cycles = [read(-2)]\n", ErrSignalRange, -1},
		{"idle range", "cycles = idle(-1)\n", ErrSignalRange, -1},
	}

	for _, entry := range table {
		script, err := Parse("bad.star", []byte(entry.src))
		assert.Nil(script, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
		var es *ErrStimulus
		if assert.True(errors.As(err, &es), entry.name) {
			assert.Equal(entry.cycle, es.Cycle, entry.name)
		}
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "s.star")
	err := os.WriteFile(path, []byte("cycles = idle(3)\n"), 0644)
	assert.NoError(err)

	script, err := Load(path)
	assert.NoError(err)
	assert.Equal(path, script.Path)
	assert.Len(script.Cycles, 3)
}

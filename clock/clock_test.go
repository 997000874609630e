package clock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var clk25 = Reference{Name: "clk25", PeriodNs: 40.0}

func TestReference(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(25_000_000, clk25.Hz())
	assert.Equal(0, Reference{}.Hz())
	assert.Equal(0, Reference{PeriodNs: -1}.Hz())
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		hz   int
		err  error
	}){
		{"1MHz", 1 * MHZ, nil},
		{"50MHz", 50 * MHZ, nil},
		{"63MHz", 63 * MHZ, nil},
		{"64MHz", 64 * MHZ, ErrFrequencyTooHigh},
		{"100MHz", 100 * MHZ, ErrFrequencyTooHigh},
		{"50.5MHz", 50_500_000, ErrFrequencyNotMHz},
		{"1Hz", 1, ErrFrequencyNotMHz},
		{"zero", 0, ErrFrequencyInvalid},
		{"negative", -MHZ, ErrFrequencyInvalid},
	}

	for _, entry := range table {
		err := Validate(entry.hz)
		if entry.err == nil {
			assert.NoError(err, entry.name)
			continue
		}
		assert.ErrorIs(err, entry.err, entry.name)
		var ef *ErrFrequency
		if assert.True(errors.As(err, &ef), entry.name) {
			assert.Equal(entry.hz, ef.Hz, entry.name)
		}
	}
}

func TestNewDomain_Passthrough(t *testing.T) {
	assert := assert.New(t)

	for _, requested := range []int{0, 25 * MHZ} {
		dom, err := NewDomain(clk25, requested)
		assert.NoError(err)
		assert.Equal(MODE_PASSTHROUGH, dom.Mode)
		assert.Equal(25*MHZ, dom.Hz)
		assert.Equal(25, dom.MHz())
		assert.Nil(dom.Pll)
		assert.Equal("clk25", dom.Source())
		assert.Contains(dom.Notice(), "clk25")
		assert.InDelta(40.0, dom.PeriodNs(), 1e-9)
	}
}

func TestNewDomain_Pll(t *testing.T) {
	assert := assert.New(t)

	dom, err := NewDomain(clk25, 50*MHZ)
	assert.NoError(err)
	assert.Equal(MODE_PLL, dom.Mode)
	assert.Equal(50*MHZ, dom.Hz)
	assert.Equal(50, dom.MHz())
	assert.Equal("pll", dom.Source())
	assert.Contains(dom.Notice(), "pll")
	if assert.NotNil(dom.Pll) {
		assert.InDelta(float64(50*MHZ), dom.Pll.OutputHz(), 1e-3)
	}
}

func TestNewDomain_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name      string
		ref       Reference
		requested int
		err       error
	}){
		{"fractional MHz", clk25, 50_500_000, ErrFrequencyNotMHz},
		{"64MHz", clk25, 64 * MHZ, ErrFrequencyTooHigh},
		{"negative", clk25, -1, ErrFrequencyInvalid},
		{"no reference", Reference{Name: "none"}, 0, ErrReferenceInvalid},
		// A reference that is not whole MHz fails in pass-through too.
		{"odd reference", Reference{Name: "clk12", PeriodNs: 83.333}, 0, ErrFrequencyNotMHz},
		{"fast reference", Reference{Name: "clk100", PeriodNs: 10}, 0, ErrFrequencyTooHigh},
		{"below pll range", clk25, 1 * MHZ, ErrPllUnreachable},
	}

	for _, entry := range table {
		dom, err := NewDomain(entry.ref, entry.requested)
		assert.Nil(dom, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestNewDomain_FromFastReference(t *testing.T) {
	assert := assert.New(t)

	// 100 MHz is not a legal system clock, but may feed the PLL.
	dom, err := NewDomain(Reference{Name: "clk100", PeriodNs: 10}, 48*MHZ)
	assert.NoError(err)
	assert.Equal(MODE_PLL, dom.Mode)
	assert.Equal(48, dom.MHz())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defs := map[string]string{}
	for k, v := range Defines() {
		defs[k] = v
	}
	assert.Equal("1000000", defs["MHZ"])
	assert.Equal("64000000", defs["SYS_LIMIT_HZ"])
}

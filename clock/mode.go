package clock

// Mode is the clocking mode of a domain.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_PASSTHROUGH = Mode(0) // passthrough
	MODE_PLL         = Mode(1) // pll
)

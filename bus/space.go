package bus

// Space names the address space a region of the bus belongs to.
type Space int

//go:generate go tool stringer -linecomment -type=Space
const (
	SPACE_MEMORY = Space(0) // memory
	SPACE_CRU    = Space(1) // cru
)

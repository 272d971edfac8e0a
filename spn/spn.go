// Package spn decodes SAE J1939 suspect parameters (SPN) from single CAN frames using
// a table of parameter definitions.
package spn

// Definition describes where single SPN value lives inside its parameter group payload
// and how the raw unsigned value maps to engineering units.
type Definition struct {
	// SPN number, unique identifier per SAE J1939 standard
	SPN  uint32 `json:"spn"`
	Name string `json:"name"`
	// PGN of the parameter group that contains this SPN
	PGN uint32 `json:"pgn"`
	// StartByte is 0-based byte position in group payload (0-7)
	StartByte uint8 `json:"start_byte"`
	// StartBit is 0-based bit position within start byte, LSB first (0-7)
	StartBit uint8 `json:"start_bit"`
	// BitLength is field width in bits (1-64). Field must fit the 8 byte frame,
	// StartByte*8 + StartBit + BitLength <= 64.
	BitLength uint8   `json:"bit_length"`
	Scale     float64 `json:"scale"`
	Offset    float64 `json:"offset"`
	Unit      string  `json:"unit"`
	// NotAvailable is the raw value source node sends when it has no data for this
	// signal. By J1939-71 convention all bits of the field set to one.
	NotAvailable uint64 `json:"not_available"`
}

func (d Definition) bitOffset() uint16 {
	return uint16(d.StartByte)*8 + uint16(d.StartBit)
}

// Decoded is single SPN value decoded to engineering units.
type Decoded struct {
	SPN      uint32  `json:"spn"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	RawValue uint64  `json:"raw_value"`
}

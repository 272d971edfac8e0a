package spn

import (
	"errors"
	"fmt"

	j1939 "github.com/aldas/go-j1939-client"
)

var (
	// ErrUnknownSPN indicates that SPN number is not present in the database
	ErrUnknownSPN = errors.New("unknown SPN")
)

// Decoder decodes single J1939 frames to SPN values using a Database. Decoder holds no
// mutable state, same inputs always produce same output and it is safe for concurrent use.
type Decoder struct {
	db *Database
}

// NewDecoder creates new decoder over given database.
func NewDecoder(db *Database) *Decoder {
	return &Decoder{db: db}
}

// Database returns database this decoder decodes against.
func (d *Decoder) Database() *Database {
	return d.db
}

// DecodeSPN extracts single SPN from frame data and converts it to engineering units as
// raw*Scale+Offset. Absent values are reported as errors: j1939.ErrValueNoData when source
// node marked the signal not available, j1939.ErrValueOutOfRange when it sent the error
// indicator value and a plain error when data is too short to contain the field.
func (d *Decoder) DecodeSPN(data j1939.RawData, def Definition) (float64, error) {
	raw, err := d.decodeRaw(data, def)
	if err != nil {
		return 0, err
	}
	return float64(raw)*def.Scale + def.Offset, nil
}

// DecodeSPNByNumber looks SPN up from the database and decodes it from frame data.
func (d *Decoder) DecodeSPNByNumber(spn uint32, data j1939.RawData) (float64, error) {
	def, ok := d.db.Get(spn)
	if !ok {
		return 0, ErrUnknownSPN
	}
	return d.DecodeSPN(data, def)
}

// DecodeFrame decodes all known SPNs for the PGN derived from canID. Unknown PGN and absent
// signals are not errors, those SPNs are simply left out of the result. Result order is the
// database registration order for that PGN.
func (d *Decoder) DecodeFrame(canID uint32, data j1939.RawData) []Decoded {
	return d.decodePGN(j1939.ExtractPGN(canID), data)
}

// DecodeMessage decodes all known SPNs from a raw message.
func (d *Decoder) DecodeMessage(raw j1939.RawMessage) []Decoded {
	return d.decodePGN(raw.Header.PGN(), raw.Data)
}

func (d *Decoder) decodePGN(pgn uint32, data j1939.RawData) []Decoded {
	defs := d.db.ForPGN(pgn)
	if len(defs) == 0 {
		return nil
	}
	result := make([]Decoded, 0, len(defs))
	for _, def := range defs {
		raw, err := d.decodeRaw(data, def)
		if err != nil {
			continue
		}
		result = append(result, Decoded{
			SPN:      def.SPN,
			Name:     def.Name,
			Value:    float64(raw)*def.Scale + def.Offset,
			Unit:     def.Unit,
			RawValue: raw,
		})
	}
	return result
}

func (d *Decoder) decodeRaw(data j1939.RawData, def Definition) (uint64, error) {
	raw, err := data.DecodeVariableUint(def.bitOffset(), uint16(def.BitLength))
	if err != nil {
		return 0, fmt.Errorf("failed to extract SPN %v, err: %w", def.SPN, err)
	}
	if raw == def.NotAvailable {
		return 0, j1939.ErrValueNoData
	}
	// error indicator is only specified for fields of full byte or wider
	if def.BitLength >= 8 && raw == def.NotAvailable-1 {
		return 0, j1939.ErrValueOutOfRange
	}
	return raw, nil
}

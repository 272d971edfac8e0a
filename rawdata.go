package j1939

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// SAE J1939-71 reserves the most positive raw values of a field: all bits set means the
// source node has no data for that signal ("not available") and all bits set minus one
// means the signal is in error/out of valid range. Raw values are mapped to these errors
// by SPN decoding, extraction in this file is value-agnostic.
var (
	// ErrValueNoData indicates that source node marked field as not available (for example 8 bits => 0xFF)
	ErrValueNoData = errors.New("field value has no data")
	// ErrValueOutOfRange indicates that field value is error indicator / out of valid range (for example 8 bits => 0xFE)
	ErrValueOutOfRange = errors.New("field value out of range")
)

// RawData is frame payload bytes. Bytes form a single little-endian bit stream where bit 0
// is the least significant bit of byte 0 and fields can span byte boundaries.
type RawData []byte

// DecodeVariableUint extracts unsigned integer of bitLength bits starting at absolute bit
// position bitOffset. Returns error when bitLength is 0 or larger than 64 or when data is
// too short to contain the field.
func (d *RawData) DecodeVariableUint(bitOffset uint16, bitLength uint16) (uint64, error) {
	if bitLength == 0 || bitLength > 64 {
		return 0, fmt.Errorf("bit length out of decodable range")
	}
	startByteIndex := bitOffset / 8
	endByteIndex := ((bitOffset + bitLength + 7) / 8) - 1
	rawData := []byte(*d)
	if int(endByteIndex) >= len(rawData) {
		return 0, fmt.Errorf("bitoffset is out of bounds of data")
	}

	rawBytes := make([]byte, 8)
	copy(rawBytes, rawData[startByteIndex:endByteIndex+1])
	result := binary.LittleEndian.Uint64(rawBytes)

	// in case we do not start at the byte border the rightmost bits are what interest us, shift leading bits off
	result >>= bitOffset % 8
	mask := (^uint64(0)) >> (64 - bitLength)
	// in case we do not end exactly at the end of last byte, clear those bits at the end
	return result & mask, nil
}

func (d *RawData) AsHex() string {
	if d == nil {
		return ""
	}
	return hex.EncodeToString(*d)
}

package j1939

import (
	"encoding/binary"
	"time"
)

const (
	// AddressGlobal is the broadcast destination address, message is meant for all nodes on the bus.
	AddressGlobal uint8 = 0xFF
	// AddressNull is used as source by nodes that have not (yet) claimed an address on the bus.
	AddressNull uint8 = 0xFE
)

// PGNRequest (ISO Request, 0xEA00) asks another node to transmit a specific PGN. Payload of the
// request frame is the requested PGN as 3 bytes in little endian order.
const PGNRequest uint32 = 59904

// MaskIDExtended is used to extract the valid 29-bit CAN identifier bits from the frame ID of an
// extended frame format. J1939 uses only extended frames.
const MaskIDExtended uint32 = 0x1FFFFFFF

// RawFrame is single J1939 CAN frame. J1939 parameter groups specified by this library fit into
// a single frame (up to 8 bytes of payload). Longer parameter groups are sent with J1939-21
// transport protocol (TP/BAM) which this library does not assemble.
type RawFrame struct {
	// Time is when frame was read from the bus. Filled by this library.
	Time time.Time

	Header CanBusHeader
	Length uint8 // 0-8
	Data   [8]byte
}

// RawMessage is single frame J1939 message ready to be decoded to SPN values.
type RawMessage struct {
	// Time is when message was read from the bus. Filled by this library.
	Time time.Time

	Header CanBusHeader
	Data   RawData
}

// Message returns frame as RawMessage with payload trimmed to frame length.
func (f RawFrame) Message() RawMessage {
	return RawMessage{
		Time:   f.Time,
		Header: f.Header,
		Data:   f.Data[:f.Length],
	}
}

// MarshalRawMessage serializes message to bytes for logging or replaying bus traffic.
func MarshalRawMessage(raw RawMessage) []byte {
	b := make([]byte, 8+4+3+len(raw.Data))

	binary.LittleEndian.PutUint64(b, uint64(raw.Time.UnixNano())) // 0 - 7
	binary.LittleEndian.PutUint32(b[8:], raw.Header.PGN())        // 8 - 11
	b[12] = raw.Header.Priority                                   // 12
	b[13] = raw.Header.Source                                     // 13
	b[14] = raw.Header.Destination()                              // 14
	copy(b[15:], raw.Data)                                        // 15 - ...

	return b
}

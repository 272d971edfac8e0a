package j1939

// NewRequestMessage creates Request PGN (59904) message asking destination node to transmit
// given PGN. Requests use priority 6.
//
// https://copperhilltech.com/blog/sae-j1939-programming-with-arduino-request-message-pgn-59904/
// Destination can be AddressGlobal to request the PGN from all nodes on the bus.
func NewRequestMessage(requesterSA uint8, targetDA uint8, pgn uint32) RawMessage {
	return RawMessage{
		Header: HeaderForPGN(PGNRequest, 6, requesterSA, targetDA),
		Data: []byte{ // requested PGN as little endian
			uint8(pgn & 0xff),
			uint8((pgn >> 8) & 0xff),
			uint8((pgn >> 16) & 0xff),
		},
	}
}

// BuildRequestPGN builds single Request PGN frame as raw CAN identifier and 3 byte payload.
//
//	canID, data := j1939.BuildRequestPGN(0xFE, 0x00, 65253) // request engine hours from node 0x00
//	// canID = 0x18EA00FE, data = [0xE5, 0xFE, 0x00]
func BuildRequestPGN(requesterSA uint8, targetDA uint8, pgn uint32) (uint32, []byte) {
	msg := NewRequestMessage(requesterSA, targetDA, pgn)
	return msg.Header.Uint32(), msg.Data
}

package j1939

// CanBusHeader is decoded view of 29-bit extended CAN identifier the way J1939 lays it out:
//
//	| Priority | R | DP | PF | PS/DA | SA |
//	|  3 bit   |1b | 1b | 8b |  8b   | 8b |
type CanBusHeader struct {
	Priority uint8 `json:"priority"`
	// Reserved is bit 25 of the identifier. J1939 transmits it as zero, it is carried
	// through as-is and not interpreted.
	Reserved  uint8 `json:"reserved"`
	DataPage  uint8 `json:"data_page"`
	PDUFormat uint8 `json:"pdu_format"`
	// PDUSpecific is destination address for PDU1 (PDUFormat < 240) messages and low byte
	// of the PGN for PDU2 (PDUFormat >= 240) broadcasts.
	PDUSpecific uint8 `json:"pdu_specific"`
	Source      uint8 `json:"source"`
}

// ParseCANID parses can bus header fields from CANID (29 bits of 32 bit). Top 3 bits are discarded.
func ParseCANID(canID uint32) CanBusHeader {
	return CanBusHeader{
		Priority:    uint8(canID>>26) & 0x7,
		Reserved:    uint8(canID>>25) & 0x1,
		DataPage:    uint8(canID>>24) & 0x1,
		PDUFormat:   uint8(canID >> 16), // bits 16-23
		PDUSpecific: uint8(canID >> 8),  // bits 8-15
		Source:      uint8(canID),       // bits 0-7
	}
}

// Uint32 packs header back to 29-bit CAN identifier. Fields wider than their bit slot are
// truncated silently, caller is responsible for passing in-range values.
func (h CanBusHeader) Uint32() uint32 {
	return uint32(h.Priority&0x7)<<26 |
		uint32(h.Reserved&0x1)<<25 |
		uint32(h.DataPage&0x1)<<24 |
		uint32(h.PDUFormat)<<16 |
		uint32(h.PDUSpecific)<<8 |
		uint32(h.Source) // this need to be turned to big endian when written to the wire
}

// PGN derives Parameter Group Number from header fields. For PDU1 (peer-to-peer) messages
// PDUSpecific byte is destination address and not part of the PGN.
func (h CanBusHeader) PGN() uint32 {
	pgn := uint32(h.DataPage&0x1)<<16 | uint32(h.PDUFormat)<<8
	if h.PDUFormat >= 240 { // PDU2, PDUSpecific is low byte of PGN
		pgn |= uint32(h.PDUSpecific)
	}
	return pgn
}

// Destination returns destination address for PDU1 messages and AddressGlobal for PDU2
// broadcasts which are always meant for everyone.
func (h CanBusHeader) Destination() uint8 {
	if h.PDUFormat >= 240 {
		return AddressGlobal
	}
	return h.PDUSpecific
}

// IsBroadcast returns true for PDU2 format messages.
func (h CanBusHeader) IsBroadcast() bool {
	return h.PDUFormat >= 240
}

// IsPeerToPeer returns true for PDU1 format messages that are sent to specific destination address.
func (h CanBusHeader) IsPeerToPeer() bool {
	return !h.IsBroadcast()
}

// HeaderForPGN creates header for sending given PGN. Destination is placed into PDUSpecific
// byte for PDU1 PGNs and is ignored for PDU2 PGNs as their low byte comes from the PGN itself.
func HeaderForPGN(pgn uint32, priority uint8, source uint8, destination uint8) CanBusHeader {
	h := CanBusHeader{
		Priority:    priority & 0x7,
		DataPage:    uint8(pgn>>16) & 0x1,
		PDUFormat:   uint8(pgn >> 8),
		PDUSpecific: uint8(pgn),
		Source:      source,
	}
	if h.PDUFormat < 240 {
		h.PDUSpecific = destination
	}
	return h
}

// ExtractPGN returns PGN from CAN identifier without decoding the full header.
func ExtractPGN(canID uint32) uint32 {
	return ParseCANID(canID).PGN()
}

// ExtractSourceAddress returns source address from CAN identifier.
func ExtractSourceAddress(canID uint32) uint8 {
	return uint8(canID)
}

// IsValidCANID reports whether value fits into the 29 bits extended identifiers J1939 uses.
func IsValidCANID(canID uint32) bool {
	return canID <= MaskIDExtended
}

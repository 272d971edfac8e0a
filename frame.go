package j1939

import (
	"go.einride.tech/can"
)

// FrameFromCAN returns J1939 raw frame from a CAN frame. Only 29 identifier bits are used,
// J1939 never uses standard 11-bit frames.
func FrameFromCAN(frm can.Frame) RawFrame {
	return RawFrame{
		Header: ParseCANID(frm.ID & MaskIDExtended),
		Length: frm.Length,
		Data:   frm.Data,
	}
}

// CANFrame returns frame as CAN frame ready to be written to the bus.
func (f RawFrame) CANFrame() can.Frame {
	return can.Frame{
		ID:         f.Header.Uint32(),
		Length:     f.Length,
		Data:       f.Data,
		IsExtended: true,
	}
}

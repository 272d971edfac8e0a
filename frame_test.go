package j1939

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.einride.tech/can"
)

func TestFrameFromCAN(t *testing.T) {
	frm := can.Frame{
		ID:         0x0CF00400,
		Length:     8,
		Data:       can.Data{0x00, 0x00, 0x00, 0x20, 0x4E, 0x00, 0x00, 0x00},
		IsExtended: true,
	}

	raw := FrameFromCAN(frm)

	assert.Equal(t, uint32(61444), raw.Header.PGN())
	assert.Equal(t, uint8(3), raw.Header.Priority)
	assert.Equal(t, uint8(8), raw.Length)
	assert.Equal(t, [8]byte{0x00, 0x00, 0x00, 0x20, 0x4E, 0x00, 0x00, 0x00}, raw.Data)
}

func TestRawFrame_CANFrame(t *testing.T) {
	raw := RawFrame{
		Header: ParseCANID(0x18EA00FE),
		Length: 3,
		Data:   [8]byte{0xE5, 0xFE, 0x00},
	}

	frm := raw.CANFrame()

	assert.Equal(t, uint32(0x18EA00FE), frm.ID)
	assert.Equal(t, uint8(3), frm.Length)
	assert.True(t, frm.IsExtended)
}

func TestRawFrame_Message(t *testing.T) {
	raw := RawFrame{
		Header: ParseCANID(0x18EA00FE),
		Length: 3,
		Data:   [8]byte{0xE5, 0xFE, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}

	msg := raw.Message()

	assert.Equal(t, raw.Header, msg.Header)
	assert.Equal(t, RawData{0xE5, 0xFE, 0x00}, msg.Data)
}

package j1939

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRequestPGN(t *testing.T) {
	var testCases = []struct {
		name            string
		whenRequesterSA uint8
		whenTargetDA    uint8
		whenPGN         uint32
		expectCanID     uint32
		expectData      []byte
	}{
		{
			name:            "ok, request engine hours from node 0x00",
			whenRequesterSA: 0xFE,
			whenTargetDA:    0x00,
			whenPGN:         65253,
			expectCanID:     0x18EA00FE,
			expectData:      []byte{0xE5, 0xFE, 0x00},
		},
		{
			name:            "ok, broadcast request for address claim",
			whenRequesterSA: AddressNull,
			whenTargetDA:    AddressGlobal,
			whenPGN:         60928,
			expectCanID:     0x18EAFFFE,
			expectData:      []byte{0x00, 0xEE, 0x00},
		},
		{
			name:            "ok, PGN with data page bit set uses all 3 payload bytes",
			whenRequesterSA: 0x80,
			whenTargetDA:    0x21,
			whenPGN:         0x1F012,
			expectCanID:     0x18EA2180,
			expectData:      []byte{0x12, 0xF0, 0x01},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			canID, data := BuildRequestPGN(tc.whenRequesterSA, tc.whenTargetDA, tc.whenPGN)

			assert.Equal(t, tc.expectCanID, canID)
			assert.Equal(t, tc.expectData, data)
		})
	}
}

func TestNewRequestMessage(t *testing.T) {
	msg := NewRequestMessage(0xFE, 0x00, 65253)

	assert.Equal(t, CanBusHeader{
		Priority:    6,
		PDUFormat:   0xEA,
		PDUSpecific: 0x00,
		Source:      0xFE,
	}, msg.Header)
	assert.Equal(t, PGNRequest, msg.Header.PGN())
	assert.Equal(t, RawData{0xE5, 0xFE, 0x00}, msg.Data)
}

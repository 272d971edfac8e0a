package slcan

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	j1939 "github.com/aldas/go-j1939-client"
	"github.com/stretchr/testify/assert"
)

func TestParseSLCAN(t *testing.T) {
	now := time.Unix(1665488842, 0).UTC()
	var testCases = []struct {
		name        string
		when        []byte
		expect      j1939.RawFrame
		expectSkip  bool
		expectError string
	}{
		{
			name: "ok, EEC1 frame",
			when: []byte(`T0CF004008000000204E000000`),
			expect: j1939.RawFrame{
				Time: now,
				Header: j1939.CanBusHeader{
					Priority:    3,
					PDUFormat:   0xF0,
					PDUSpecific: 0x04,
					Source:      0x00,
				},
				Length: 8,
				Data:   [8]byte{0x00, 0x00, 0x00, 0x20, 0x4E, 0x00, 0x00, 0x00},
			},
		},
		{
			name: "ok, request frame with 3 data bytes",
			when: []byte(`T18EA00FE3E5FE00`),
			expect: j1939.RawFrame{
				Time: now,
				Header: j1939.CanBusHeader{
					Priority:    6,
					PDUFormat:   0xEA,
					PDUSpecific: 0x00,
					Source:      0xFE,
				},
				Length: 3,
				Data:   [8]byte{0xE5, 0xFE, 0x00},
			},
		},
		{
			name: "ok, lowercase hex data",
			when: []byte(`T18FEEE001ff`),
			expect: j1939.RawFrame{
				Time: now,
				Header: j1939.CanBusHeader{
					Priority:    6,
					PDUFormat:   0xFE,
					PDUSpecific: 0xEE,
					Source:      0x00,
				},
				Length: 1,
				Data:   [8]byte{0xFF},
			},
		},
		{
			name:        "skip, standard frame",
			when:        []byte(`t1238deadbeefdeadbeef`),
			expectSkip:  true,
			expectError: "slcan line is not extended data frame",
		},
		{
			name:        "skip, command acknowledgement",
			when:        []byte(``),
			expectSkip:  true,
			expectError: "slcan line is not extended data frame",
		},
		{
			name:        "nok, too short",
			when:        []byte(`T18EA00`),
			expectError: "slcan frame is too short",
		},
		{
			name:        "nok, invalid CAN ID",
			when:        []byte(`TXX3EA00FE0`),
			expectError: `slcan frame has invalid CAN ID: strconv.ParseUint: parsing "XX3EA00F": invalid syntax`,
		},
		{
			name:        "nok, invalid length",
			when:        []byte(`T18EA00FE9E5FE00`),
			expectError: "slcan frame has invalid length",
		},
		{
			name:        "nok, data shorter than length",
			when:        []byte(`T18EA00FE3E5FE`),
			expectError: "slcan frame data is shorter than its length",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, skip, err := parseSLCAN(tc.when, now)

			assert.Equal(t, tc.expect, result)
			assert.Equal(t, tc.expectSkip, skip)
			if tc.expectError != "" {
				assert.EqualError(t, err, tc.expectError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToSLCANBytes(t *testing.T) {
	var testCases = []struct {
		name   string
		when   j1939.RawFrame
		expect string
	}{
		{
			name: "ok, request frame",
			when: j1939.RawFrame{
				Header: j1939.CanBusHeader{
					Priority:    6,
					PDUFormat:   0xEA,
					PDUSpecific: 0x00,
					Source:      0xFE,
				},
				Length: 3,
				Data:   [8]byte{0xE5, 0xFE, 0x00},
			},
			expect: "T18EA00FE3E5FE00\r",
		},
		{
			name: "ok, empty data",
			when: j1939.RawFrame{
				Header: j1939.CanBusHeader{
					Priority:    3,
					PDUFormat:   0xF0,
					PDUSpecific: 0x04,
				},
			},
			expect: "T0CF004000\r",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, string(toSLCANBytes(tc.when)))
		})
	}
}

type mockSerial struct {
	reads  [][]byte
	writes [][]byte
}

func (m *mockSerial) Read(p []byte) (int, error) {
	if len(m.reads) == 0 {
		return 0, io.EOF
	}
	chunk := m.reads[0]
	m.reads = m.reads[1:]
	return copy(p, chunk), nil
}

func (m *mockSerial) Write(p []byte) (int, error) {
	m.writes = append(m.writes, bytes.Clone(p))
	return len(p), nil
}

func TestDevice_ReadRawMessage(t *testing.T) {
	serial := &mockSerial{reads: [][]byte{
		[]byte("\r"),                   // ack from adapter setup
		[]byte("t10023344\r"),          // standard frame, skipped
		[]byte("T0CF00400800000"),      // extended frame split over two reads
		[]byte("0204E000000\rT18FE"),   // rest of frame plus start of next one
	}}
	dev := NewDevice(serial, Config{})

	msg, err := dev.ReadRawMessage(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, uint32(61444), msg.Header.PGN())
	assert.Equal(t, j1939.RawData{0x00, 0x00, 0x00, 0x20, 0x4E, 0x00, 0x00, 0x00}, msg.Data)

	_, err = dev.ReadRawMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestDevice_Initialize(t *testing.T) {
	serial := &mockSerial{}
	dev := NewDevice(serial, Config{Bitrate: Bitrate500k})

	err := dev.Initialize()

	assert.NoError(t, err)
	assert.Equal(t, [][]byte{
		[]byte("C\r"),
		[]byte("S6\r"),
		[]byte("O\r"),
	}, serial.writes)
}

func TestDevice_Write(t *testing.T) {
	serial := &mockSerial{}
	dev := NewDevice(serial, Config{})

	msg := j1939.NewRequestMessage(0xFE, 0x00, 65253)
	err := dev.Write(msg)

	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("T18EA00FE3E5FE00\r")}, serial.writes)
}

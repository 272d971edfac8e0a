// Package slcan implements the Lawicel serial line CAN (SLCAN) protocol spoken by
// USB CAN adapters as CANable, CANtact and USBtin and by the Linux slcand daemon.
package slcan

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	j1939 "github.com/aldas/go-j1939-client"
	"github.com/aldas/go-j1939-client/internal/utils"
	"github.com/avast/retry-go"
)

// Bitrate is SLCAN `Sn` bitrate setup code
type Bitrate byte

const (
	Bitrate10k  Bitrate = '0'
	Bitrate20k  Bitrate = '1'
	Bitrate50k  Bitrate = '2'
	Bitrate100k Bitrate = '3'
	Bitrate125k Bitrate = '4'
	Bitrate250k Bitrate = '5'
	Bitrate500k Bitrate = '6'
	Bitrate800k Bitrate = '7'
	Bitrate1M   Bitrate = '8'
)

type Config struct {
	// Bitrate is CAN bus bitrate the adapter is set to on Initialize. J1939 buses run
	// at 250k or 500k. Defaults to Bitrate250k when empty.
	Bitrate Bitrate

	// InitializeAttempts is how many times adapter setup commands are retried before
	// Initialize gives up. Adapters tend to swallow the first bytes after plugging in.
	InitializeAttempts uint

	DebugLogRawFrameBytes bool
}

// Device is SLCAN adapter on the other end of a serial port (io.ReadWriter).
type Device struct {
	device  io.ReadWriter
	timeNow func() time.Time

	readBuffer []byte
	readIndex  int

	config Config
}

func NewDevice(device io.ReadWriter, config Config) *Device {
	if config.Bitrate == 0 {
		config.Bitrate = Bitrate250k
	}
	if config.InitializeAttempts == 0 {
		config.InitializeAttempts = 3
	}
	return &Device{
		device:     device,
		timeNow:    time.Now,
		readBuffer: make([]byte, 100),
		config:     config,
	}
}

func (d *Device) Close() error {
	if c, ok := d.device.(io.Closer); ok {
		return c.Close()
	}
	return errors.New("device does not implement Closer interface")
}

// Initialize closes possibly open channel from previous run, sets bitrate and opens the
// channel. Each command is retried as adapters lose bytes sent right after port open.
func (d *Device) Initialize() error {
	for _, cmd := range []string{
		"C\r",                               // close channel
		"S" + string(d.config.Bitrate) + "\r", // set bitrate
		"O\r",                               // open channel
	} {
		err := retry.Do(
			func() error {
				_, err := d.device.Write([]byte(cmd))
				return err
			},
			retry.Attempts(d.config.InitializeAttempts),
			retry.Delay(50*time.Millisecond),
		)
		if err != nil {
			return fmt.Errorf("slcan initialize command %v failed: %w", utils.EscapeControl([]byte(cmd)), err)
		}
	}
	return nil
}

func (d *Device) Write(msg j1939.RawMessage) error {
	if len(msg.Data) > 8 {
		return errors.New("message data does not fit into single frame")
	}
	frame := j1939.RawFrame{
		Time:   msg.Time,
		Header: msg.Header,
		Length: uint8(len(msg.Data)),
	}
	copy(frame.Data[:], msg.Data)

	rawB := toSLCANBytes(frame)
	if d.config.DebugLogRawFrameBytes {
		fmt.Printf("# DEBUG Writing SLCAN bytes: `%v`\n", utils.EscapeControl(rawB))
	}
	_, err := d.device.Write(rawB)
	return err
}

const hextable = "0123456789ABCDEF"

// toSLCANBytes serializes frame as extended frame line. Example: `T18EA00FE3E5FE00\r`
func toSLCANBytes(frame j1939.RawFrame) []byte {
	out := make([]byte, 0, 1+8+1+2*8+1)
	out = append(out, 'T')

	canID := frame.Header.Uint32()
	for shift := 28; shift >= 0; shift -= 4 {
		out = append(out, hextable[(canID>>shift)&0xF])
	}

	out = append(out, '0'+frame.Length)
	for i := uint8(0); i < frame.Length; i++ {
		v := frame.Data[i]
		out = append(out, hextable[v>>4], hextable[v&0x0F])
	}
	return append(out, '\r')
}

func (d *Device) ReadRawMessage(ctx context.Context) (j1939.RawMessage, error) {
	frame, err := d.ReadRawFrame(ctx)
	if err != nil {
		return j1939.RawMessage{}, err
	}
	return frame.Message(), nil
}

func (d *Device) ReadRawFrame(ctx context.Context) (j1939.RawFrame, error) {
	buf := make([]byte, 50)

	for {
		select {
		case <-ctx.Done():
			return j1939.RawFrame{}, ctx.Err()
		default:
		}

		n, err := d.device.Read(buf) // FIXME: read is blocking call. we need to set read timeouts to work with context cancellations
		if err != nil {
			return j1939.RawFrame{}, err
		}
		if n == 0 {
			continue
		}

		endIndex := bytes.IndexByte(buf[0:n], '\r')
		if endIndex == -1 { // no end of frame seen. add read bytes to buffer and try reading more
			copy(d.readBuffer[d.readIndex:], buf[0:n])
			d.readIndex += n

			continue
		}
		// end of frame found, assemble full line from previously read bytes plus current read
		copy(d.readBuffer[d.readIndex:], buf[0:endIndex])
		d.readIndex += endIndex

		line := d.readBuffer[0:d.readIndex]
		if d.config.DebugLogRawFrameBytes {
			fmt.Printf("# DEBUG Read SLCAN frame: `%v`\n", utils.EscapeControl(line))
		}
		now := d.timeNow()
		rawFrame, skip, err := parseSLCAN(line, now)

		// reset read buffer to whatever we were able to read past current frame end
		endIndex++ // note: skip \r
		copy(d.readBuffer, buf[endIndex:n])
		d.readIndex = n - endIndex

		if skip {
			continue
		}

		return rawFrame, err
	}
}

// parseSLCAN parses extended data frame line. Standard frames, remote frames and command
// acknowledgements are skipped as they can not carry J1939 messages.
func parseSLCAN(raw []byte, now time.Time) (j1939.RawFrame, bool, error) {
	if len(raw) == 0 || raw[0] != 'T' {
		return j1939.RawFrame{}, true, errors.New("slcan line is not extended data frame")
	}
	// `T` + 8 hex digit CAN ID + single digit length
	if len(raw) < 10 {
		return j1939.RawFrame{}, false, errors.New("slcan frame is too short")
	}

	canID, err := strconv.ParseUint(string(raw[1:9]), 16, 32)
	if err != nil {
		return j1939.RawFrame{}, false, fmt.Errorf("slcan frame has invalid CAN ID: %w", err)
	}

	length := raw[9] - '0'
	if length > 8 {
		return j1939.RawFrame{}, false, errors.New("slcan frame has invalid length")
	}
	if len(raw) < 10+2*int(length) {
		return j1939.RawFrame{}, false, errors.New("slcan frame data is shorter than its length")
	}

	data := [8]byte{}
	if _, err := hex.Decode(data[:], raw[10:10+2*length]); err != nil {
		return j1939.RawFrame{}, false, fmt.Errorf("slcan frame has invalid data: %w", err)
	}

	return j1939.RawFrame{
		Time:   now,
		Header: j1939.ParseCANID(uint32(canID) & j1939.MaskIDExtended),
		Length: length,
		Data:   data,
	}, false, nil
}

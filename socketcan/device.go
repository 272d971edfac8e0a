package socketcan

import (
	"context"
	"errors"
	"time"

	j1939 "github.com/aldas/go-j1939-client"
)

type Device struct {
	conn *Connection

	// ifName is SocketCAN interface name. For example: can0
	ifName string

	// receiveDataTimeout is to limit amount of time reads can result no data. to timeout the connection when there is no
	// interaction in bus. This is different from for example serial device readTimeout which limits how much time Read
	// call blocks but we want to Reads block small amount of time to be able to check if context was cancelled during read
	// but at the same time we want to be able to detect when there are no coming from bus for excessive amount of time.
	receiveDataTimeout time.Duration

	timeNow func() time.Time
}

func NewDevice(ifName string) *Device {
	return &Device{
		conn: nil,

		ifName:             ifName,
		timeNow:            time.Now,
		receiveDataTimeout: 5 * time.Second,
	}
}

func (d *Device) Close() error {
	return d.conn.Close()
}

func (d *Device) Initialize() error {
	conn, err := NewConnection(d.ifName)
	if err != nil {
		return err
	}
	d.conn = conn

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

	if err := d.conn.SetSendTimeout(1 * time.Second); err != nil {
		return err
	}
	return d.conn.SendFrame(frame)
}

func (d *Device) ReadRawMessage(ctx context.Context) (j1939.RawMessage, error) {
	start := d.timeNow()
	for {
		select {
		case <-ctx.Done():
			return j1939.RawMessage{}, ctx.Err()
		default:
		}

		if err := d.conn.SetReadTimeout(50 * time.Millisecond); err != nil { // max 50ms block time for read per iteration
			return j1939.RawMessage{}, err
		}
		frame, err := d.conn.ReadRawFrame()

		now := d.timeNow()
		// read timeouts are not terminal by themselves, we only give up when bus has been
		// silent for longer than receiveDataTimeout
		if err != nil {
			if errors.Is(err, errReadTimeout) {
				if now.Sub(start) > d.receiveDataTimeout {
					return j1939.RawMessage{}, err
				}
				continue
			}
			return j1939.RawMessage{}, err
		}

		return frame.Message(), nil
	}
}

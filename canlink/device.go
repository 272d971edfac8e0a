// Package canlink is SocketCAN device implemented on top of go.einride.tech/can
// library. It is an alternative to the raw socket based socketcan package of this
// module and exists for environments that already use the einride CAN stack.
package canlink

import (
	"context"
	"errors"
	"fmt"
	"net"

	j1939 "github.com/aldas/go-j1939-client"
	"go.einride.tech/can/pkg/socketcan"
)

type Device struct {
	// ifName is SocketCAN interface name. For example: can0
	ifName string

	conn net.Conn
	recv *socketcan.Receiver
	tx   *socketcan.Transmitter

	frames chan j1939.RawMessage
	errs   chan error
}

func NewDevice(ifName string) *Device {
	return &Device{
		ifName: ifName,
		frames: make(chan j1939.RawMessage, 1),
		errs:   make(chan error, 1),
	}
}

func (d *Device) Initialize() error {
	conn, err := socketcan.Dial("can", d.ifName)
	if err != nil {
		return fmt.Errorf("socketcan dial: %w", err)
	}
	d.conn = conn
	d.recv = socketcan.NewReceiver(conn)
	d.tx = socketcan.NewTransmitter(conn)

	go d.receiveLoop()

	return nil
}

func (d *Device) receiveLoop() {
	for d.recv.Receive() {
		frm := d.recv.Frame()
		// standard 11 bit frames can not carry a PGN and remote frames have no data
		if !frm.IsExtended || frm.IsRemote {
			continue
		}
		d.frames <- j1939.FrameFromCAN(frm).Message()
	}
	err := d.recv.Err()
	if err == nil {
		err = errors.New("receive failed")
	}
	d.errs <- err
}

func (d *Device) ReadRawMessage(ctx context.Context) (j1939.RawMessage, error) {
	select {
	case <-ctx.Done():
		return j1939.RawMessage{}, ctx.Err()
	case msg := <-d.frames:
		return msg, nil
	case err := <-d.errs:
		return j1939.RawMessage{}, err
	}
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

	return d.tx.TransmitFrame(context.Background(), frame.CANFrame())
}

func (d *Device) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

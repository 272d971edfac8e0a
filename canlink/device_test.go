package canlink

import (
	"context"
	"fmt"
	"testing"

	j1939 "github.com/aldas/go-j1939-client"
	"github.com/stretchr/testify/assert"
)

func TestDevice_WriteTooLongMessage(t *testing.T) {
	dev := NewDevice("can0")

	err := dev.Write(j1939.RawMessage{
		Data: j1939.RawData{0, 1, 2, 3, 4, 5, 6, 7, 8},
	})

	assert.EqualError(t, err, "message data does not fit into single frame")
}

// sudo ip link set can0 down && sudo /sbin/ip link set can0 up type can bitrate 250000

func xTestDeviceRead(t *testing.T) {
	dev := NewDevice("can0")

	if err := dev.Initialize(); err != nil {
		assert.NoError(t, err)
		return
	}
	defer dev.Close()

	for i := 0; i < 100; i++ {
		msg, err := dev.ReadRawMessage(context.Background())
		if err != nil {
			assert.NoError(t, err)
			return
		}
		fmt.Printf("message: %+v\n", msg)
	}
}

package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	j1939 "github.com/aldas/go-j1939-client"
	"github.com/aldas/go-j1939-client/canlink"
	"github.com/aldas/go-j1939-client/slcan"
	"github.com/aldas/go-j1939-client/socketcan"
	"github.com/aldas/go-j1939-client/spn"
	"github.com/tarm/serial"
)

func main() {
	printRaw := flag.Bool("raw", false, "prints raw message")
	onlyRaw := flag.Bool("raw-only", false, "prints only raw message (does not decode SPNs)")
	onlyRead := flag.Bool("read-only", false, "only reads device/file and does not write into it")
	inputFormat := flag.String("input-format", "socketcan", "in which format packets are read (socketcan, canlink, slcan, file)")
	deviceAddr := flag.String("device", "can0", "SocketCAN interface name or path to serial device/file")
	pgnFilter := flag.String("filter", "", "comma separated list of PGNs to filter")
	sourceAddr := flag.Uint("source", 0xFE, "source address used when sending requests")
	requestsRaw := flag.String("request", "", "comma separated list of PGNs to request at startup. `65253` or `65253@0` to request from specific address")
	outputFormat := flag.String("output-format", "json", "in which format raw and decoded packets should be printed out (json, hex)")
	baudRate := flag.Int("baud", 115200, "serial device baud rate.")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if deviceAddr == nil || *deviceAddr == "" {
		log.Fatal("# missing device\n")
	}
	if *sourceAddr > 0xFF {
		log.Fatal("# source address out of range\n")
	}
	ownAddress := uint8(*sourceAddr)

	var err error
	var filter []uint32
	if pgnFilter != nil && *pgnFilter != "" {
		filter, err = string2intSlice(*pgnFilter)
		if err != nil {
			log.Fatalf("invalid pgn filter given, %v\n", err)
		}
		fmt.Printf("# Using PGN filter: %v\n", filter)
	}

	requests, err := parseRequests(*requestsRaw, ownAddress)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	switch *outputFormat {
	case "json", "hex":
	default:
		log.Fatal("unknown output format type given\n")
	}

	isFile := *inputFormat == "file"
	var device j1939.RawMessageReaderWriter
	switch *inputFormat {
	case "socketcan":
		device = socketcan.NewDevice(*deviceAddr)
	case "canlink":
		device = canlink.NewDevice(*deviceAddr)
	case "slcan", "file":
		var port io.ReadWriteCloser
		if isFile {
			port, err = os.OpenFile(*deviceAddr, os.O_RDONLY, 0)
		} else {
			port, err = serial.OpenPort(&serial.Config{
				Name: *deviceAddr,
				Baud: *baudRate,
				// ReadTimeout is duration that Read call is allowed to block. Device has different timeout for situation when
				// there is no activity on bus. Can not be smaller than 100ms
				ReadTimeout: 100 * time.Millisecond,
				Size:        8,
			})
		}
		if err != nil {
			log.Fatal(err)
		}
		device = slcan.NewDevice(port, slcan.Config{
			DebugLogRawFrameBytes: *printRaw,
		})
	default:
		log.Fatal("unknown input format type given\n")
	}

	database := spn.NewDefaultDatabase()
	decoder := spn.NewDecoder(database)
	spnCount, pgnCount := database.Stats()
	fmt.Printf("# Loaded %v SPN definitions for %v PGNs\n", spnCount, pgnCount)

	if !isFile {
		fmt.Printf("# Initializing device: %v\n", *deviceAddr)
		if err := device.Initialize(); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("# Starting to read device: %v\n", *deviceAddr)

	if !isFile && !*onlyRead {
		for _, req := range requests {
			fmt.Printf("# Requesting PGN %v from %v\n", req.Header.PGN(), req.Header.Destination())
			if err := device.Write(req); err != nil {
				fmt.Printf("# Error at requesting PGN: %v\n", err)
			}
		}

		fmt.Printf("# Starting STDIN process\n")
		go handleSTDIO(device, database, ownAddress)
	}

	msgCount := uint64(0)
	errorCountRead := uint64(0)
	for {
		rawMessage, err := device.ReadRawMessage(ctx)
		msgCount++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errorCountRead++
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Printf("# Error ReadRawMessage: %v\n", err)
			if errorCountRead > 20 {
				return
			}
			continue
		}
		errorCountRead = 0

		if filter != nil && !contains(filter, rawMessage.Header.PGN()) {
			continue
		}

		if *printRaw || *onlyRaw {
			var b []byte
			switch *outputFormat {
			case "json":
				b, _ = json.Marshal(rawMessage)
			case "hex":
				b = []byte(hex.EncodeToString(j1939.MarshalRawMessage(rawMessage)))
			}
			fmt.Printf("%s\n", b)
			if *onlyRaw {
				continue
			}
		}

		decoded := decoder.DecodeMessage(rawMessage)
		if len(decoded) == 0 {
			fmt.Printf("# unknown or empty PGN: %v from %v (msgCount: %v)\n", rawMessage.Header.PGN(), rawMessage.Header.Source, msgCount)
			continue
		}

		b, err := json.Marshal(output{
			Time:   rawMessage.Time,
			PGN:    rawMessage.Header.PGN(),
			Source: rawMessage.Header.Source,
			SPNs:   decoded,
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\n", b)
	}
	fmt.Printf("# Finishing, number of processed messages: %v\n", msgCount)
}

type output struct {
	Time   time.Time     `json:"time"`
	PGN    uint32        `json:"pgn"`
	Source uint8         `json:"source"`
	SPNs   []spn.Decoded `json:"spns"`
}

func handleSTDIO(device j1939.RawMessageWriter, database *spn.Database, ownAddress uint8) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "!pgns" {
			pgns := database.SupportedPGNs()
			fmt.Printf("# Known PGNs: %v\n", len(pgns))
			for _, pgn := range pgns {
				fmt.Printf("# pgn: %v (%X), SPNs: %v\n", pgn, pgn, len(database.ForPGN(pgn)))
			}
			continue
		}

		msg, err := parseRequest(line, ownAddress)
		if err != nil {
			fmt.Printf("# Error parsing request: %v\n", err)
			continue
		}

		if err = device.Write(msg); err != nil {
			fmt.Printf("# Error at writing: %v\n", err)
		}
	}
}

// parseRequest parses `pgn` or `pgn@destination` into Request PGN message.
// Example: `65253@0` requests engine hours from address 0.
func parseRequest(line string, ownAddress uint8) (j1939.RawMessage, error) {
	pgnRaw, dstRaw, hasDst := strings.Cut(line, "@")

	pgn, err := strconv.ParseUint(strings.TrimSpace(pgnRaw), 10, 32)
	if err != nil {
		return j1939.RawMessage{}, fmt.Errorf("failed to parse PGN, err: %w", err)
	}

	destination := j1939.AddressGlobal
	if hasDst {
		dst, err := strconv.ParseUint(strings.TrimSpace(dstRaw), 10, 8)
		if err != nil {
			return j1939.RawMessage{}, fmt.Errorf("failed to parse destination, err: %w", err)
		}
		destination = uint8(dst)
	}

	return j1939.NewRequestMessage(ownAddress, destination, uint32(pgn)), nil
}

func parseRequests(raw string, ownAddress uint8) ([]j1939.RawMessage, error) {
	if raw == "" {
		return nil, nil
	}
	result := make([]j1939.RawMessage, 0, 2)
	for _, part := range strings.Split(raw, ",") {
		msg, err := parseRequest(part, ownAddress)
		if err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, nil
}

func string2intSlice(s string) ([]uint32, error) {
	result := make([]uint32, 0, 10)
	for _, p := range strings.Split(s, ",") {
		pgn, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		result = append(result, uint32(pgn))
	}
	return result, nil
}

func contains[T comparable](elems []T, v T) bool {
	for _, s := range elems {
		if v == s {
			return true
		}
	}
	return false
}

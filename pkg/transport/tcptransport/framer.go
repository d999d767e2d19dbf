// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package tcptransport is a length-prefixed, pluggable-codec TCP
// field-bus transport: the socket-level stand-in for the reference
// implementation's industrial wire protocol. Framing and codec are
// grounded on the teacher corpus's comms layer (a 4-byte little-endian
// length prefix ahead of each message, with JSON or gob doing the
// structured encoding inside the frame).
package tcptransport

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

// Framer prefixes each message with a 4-byte little-endian length
// field and reassembles it on the receive side, tolerating short reads.
type Framer struct {
	conn io.ReadWriter
	mu   sync.Mutex
}

// NewFramer wraps conn (normally a net.Conn) with length-prefix framing.
func NewFramer(conn io.ReadWriter) *Framer {
	return &Framer{conn: conn}
}

// Send writes one length-prefixed message. Safe for concurrent callers.
func (f *Framer) Send(message []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(message)))
	if _, err := f.conn.Write(header[:]); err != nil {
		return err
	}
	_, err := f.conn.Write(message)
	return err
}

// Receive blocks for the next length-prefixed message.
func (f *Framer) Receive() ([]byte, error) {
	header, err := f.receiveBytes(4)
	if err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(header)
	return f.receiveBytes(uint(n))
}

func (f *Framer) receiveBytes(count uint) ([]byte, error) {
	buf := make([]byte, count)
	var read uint
	for read < count {
		n, err := f.conn.Read(buf[read:])
		if n < 0 {
			return nil, fmt.Errorf("connection returned negative byte count (%d)", n)
		}
		read += uint(n)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

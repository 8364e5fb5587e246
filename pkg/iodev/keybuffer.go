// Package iodev provides the host-side input and output devices that a
// front end wires to a machine's ReadChar and PrintChar instructions.
package iodev

import "io"

// KeyBuffer is a FIFO of typed bytes implementing io.ByteReader. Reading an
// empty buffer returns io.EOF, so an interactive program that asks for input
// before any key arrived leaves the current cell unchanged instead of
// blocking the frame loop.
//
// KeyBuffer is meant for single-goroutine use: the front end pushes keys and
// steps the machine from the same update loop.
type KeyBuffer struct {
	keys []byte
}

func (k *KeyBuffer) Push(ch byte) {
	k.keys = append(k.keys, ch)
}

func (k *KeyBuffer) ReadByte() (byte, error) {
	if len(k.keys) == 0 {
		return 0, io.EOF
	}
	ch := k.keys[0]
	k.keys = k.keys[1:]
	return ch, nil
}

// Len reports how many bytes are pending.
func (k *KeyBuffer) Len() int {
	return len(k.keys)
}

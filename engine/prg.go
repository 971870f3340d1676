//
// prg.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package engine

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// prg generates the pseudorandom share material of the simulation.
// A fixed seed makes runs reproducible; without one the key comes
// from crypto/rand.
type prg struct {
	stream *chacha20.Cipher
}

func newPRG(seed *[32]byte) (*prg, error) {
	var key [32]byte
	if seed != nil {
		key = *seed
	} else {
		if _, err := rand.Read(key[:]); err != nil {
			return nil, err
		}
	}

	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &prg{stream: stream}, nil
}

func (p *prg) uint64() uint64 {
	var buf [8]byte
	p.stream.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

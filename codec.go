// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// binarySize is the packed wire size of a descriptor: four one-byte tag
// fields (base type, aggregate, semantics, one reserved zero byte) plus
// a little-endian int32 array length.
const binarySize = 8

// MarshalText renders the descriptor as its canonical type spelling.
func (t TypeDesc) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a type spelling. The whole input must form one
// legal spelling.
func (t *TypeDesc) UnmarshalText(b []byte) error {
	parsed := Parse(string(b))
	if parsed.IsUnknown() && strings.TrimSpace(string(b)) != "unknown" {
		return fmt.Errorf("typedesc: invalid type spelling %q", b)
	}
	*t = parsed
	return nil
}

// MarshalBinary packs the descriptor into its fixed 8-byte wire form.
func (t TypeDesc) MarshalBinary() ([]byte, error) {
	b := make([]byte, binarySize)
	b[0] = byte(t.BaseType)
	b[1] = byte(t.Aggregate)
	b[2] = byte(t.VecSemantics)
	b[3] = 0 // reserved
	binary.LittleEndian.PutUint32(b[4:], uint32(t.ArrayLen))
	return b, nil
}

// UnmarshalBinary unpacks the fixed 8-byte wire form, rejecting tags
// outside the closed enumerations.
func (t *TypeDesc) UnmarshalBinary(b []byte) error {
	if len(b) != binarySize {
		return fmt.Errorf("typedesc: wire form is %d bytes, got %d", binarySize, len(b))
	}
	d := TypeDesc{
		BaseType:     BaseType(b[0]),
		Aggregate:    Aggregate(b[1]),
		VecSemantics: VecSemantics(b[2]),
		ArrayLen:     int32(binary.LittleEndian.Uint32(b[4:])),
	}
	if d.BaseType >= LastBase {
		return fmt.Errorf("typedesc: invalid base type tag %d", b[0])
	}
	if !d.Aggregate.IsValid() {
		return fmt.Errorf("typedesc: invalid aggregate tag %d", b[1])
	}
	if d.VecSemantics > SemBox {
		return fmt.Errorf("typedesc: invalid semantics tag %d", b[2])
	}
	*t = d
	return nil
}

// MarshalCBOR encodes the descriptor as a CBOR byte string holding the
// 8-byte wire form, so it embeds directly in CBOR metadata documents.
func (t TypeDesc) MarshalCBOR() ([]byte, error) {
	b, err := t.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(b)
}

// UnmarshalCBOR decodes a descriptor produced by MarshalCBOR.
func (t *TypeDesc) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("typedesc: decoding descriptor: %w", err)
	}
	return t.UnmarshalBinary(b)
}

package adt

import (
	"encoding/binary"

	addr "github.com/filecoin-project/go-address"
	"golang.org/x/xerrors"
)

// Keyer defines an interface required to put values in mapping.
type Keyer interface {
	Key() string
}

// Adapts an address as a mapping key.
type AddrKey addr.Address

func (k AddrKey) Key() string {
	return string(addr.Address(k).Bytes())
}

// Adapts an int as a mapping key.
type IntKey int64

func (k IntKey) Key() string {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(buf, int64(k))
	return string(buf[:n])
}

// Adapts a uint as a mapping key.
type UIntKey uint64

func (k UIntKey) Key() string {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, uint64(k))
	return string(buf[:n])
}

// ParseUIntKey parses a uint key back to the integer it encodes.
func ParseUIntKey(k string) (uint64, error) {
	i, n := binary.Uvarint([]byte(k))
	if n != len(k) {
		return 0, xerrors.New("failed to decode uvarint key")
	}
	return i, nil
}

// ParseAddrKey parses an address key back to the address it encodes.
func ParseAddrKey(k string) (addr.Address, error) {
	return addr.NewFromBytes([]byte(k))
}

package adt

import (
	"io"

	vmr "github.com/erisprotocol/hub-actors/actors/runtime"
)

// An empty value, holding no data, and serializing to the empty CBOR sequence.
// Used as the parameter and return type of methods that take and return nothing.
type EmptyValue struct{}

var _ vmr.CBORer = (*EmptyValue)(nil)

// A convenience to have ready to hand.
var Empty = &EmptyValue{}

func (v *EmptyValue) MarshalCBOR(_ io.Writer) error {
	// An empty value serializes to nothing.
	return nil
}

func (v *EmptyValue) UnmarshalCBOR(_ io.Reader) error {
	// An empty value deserializes from nothing, leaving any existing content unchanged.
	return nil
}

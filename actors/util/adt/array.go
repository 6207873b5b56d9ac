package adt

import (
	"bytes"

	amt "github.com/filecoin-project/go-amt-ipld/v2"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	errors "golang.org/x/xerrors"
)

// Array stores a sparse sequence of values in an AMT.
type Array struct {
	root  *amt.Root
	store Store
}

// AsArray interprets a store as an AMT-based array with root `r`.
func AsArray(s Store, r cid.Cid) (*Array, error) {
	root, err := amt.LoadAMT(s.Context(), s, r)
	if err != nil {
		return nil, errors.Errorf("failed to root: %w", err)
	}

	return &Array{
		root:  root,
		store: s,
	}, nil
}

// Creates a new array backed by an empty AMT.
func MakeEmptyArray(s Store) *Array {
	root := amt.NewAMT(s)
	return &Array{
		root:  root,
		store: s,
	}
}

// Returns the root CID of the underlying AMT.
func (a *Array) Root() (cid.Cid, error) {
	return a.root.Flush(a.store.Context())
}

// Appends a value to the end of the array. Assumes continuous array.
// If the array isn't continuous use Set and a separate counter.
func (a *Array) AppendContinuous(value cbg.CBORMarshaler) error {
	return a.root.Set(a.store.Context(), a.root.Count, value)
}

// Sets the value at index `i`.
func (a *Array) Set(i uint64, value cbg.CBORMarshaler) error {
	return a.root.Set(a.store.Context(), i, value)
}

// Removes the value at index `i` from the AMT, if it exists.
// Returns whether the index was previously present.
func (a *Array) TryDelete(i uint64) (bool, error) {
	if err := a.root.Delete(a.store.Context(), i); err != nil {
		if _, ok := err.(*amt.ErrNotFound); ok {
			return false, nil
		}
		return false, errors.Errorf("array delete: %w", err)
	}
	return true, nil
}

// Removes the value at index `i` from the AMT, expecting it to exist.
func (a *Array) Delete(i uint64) error {
	return a.root.Delete(a.store.Context(), i)
}

// Iterates all entries in the array, deserializing each value in turn into `out` and then calling a function.
// Iteration halts if the function returns an error.
// If the output parameter is nil, deserialization is skipped.
func (a *Array) ForEach(out cbg.CBORUnmarshaler, fn func(i int64) error) error {
	return a.root.ForEach(a.store.Context(), func(k uint64, val *cbg.Deferred) error {
		if out != nil {
			if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		return fn(int64(k))
	})
}

// Number of entries in the array.
func (a *Array) Length() uint64 {
	return a.root.Count
}

// Get retrieves array element into the 'out' unmarshaler, returning a boolean
//  indicating whether the element was found in the array
func (a *Array) Get(k uint64, out cbg.CBORUnmarshaler) (bool, error) {
	if err := a.root.Get(a.store.Context(), k, out); err != nil {
		if _, ok := err.(*amt.ErrNotFound); ok {
			return false, nil
		}
		return false, errors.Errorf("array get: %w", err)
	}
	return true, nil
}

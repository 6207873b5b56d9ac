package adt

import (
	"bytes"

	hamt "github.com/filecoin-project/go-hamt-ipld"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	errors "golang.org/x/xerrors"
)

// Map stores key-value pairs in a HAMT.
type Map struct {
	lastCid cid.Cid
	root    *hamt.Node
	store   Store
}

// AsMap interprets a store as a HAMT-based map with root `r`.
func AsMap(s Store, r cid.Cid) (*Map, error) {
	nd, err := hamt.LoadNode(s.Context(), s, r)
	if err != nil {
		return nil, errors.Errorf("failed to load hamt node: %w", err)
	}

	return &Map{
		lastCid: r,
		root:    nd,
		store:   s,
	}, nil
}

// MakeEmptyMap creates a new, empty HAMT backed by store `s`.
func MakeEmptyMap(s Store) *Map {
	nd := hamt.NewNode(s)
	return &Map{
		lastCid: cid.Undef,
		root:    nd,
		store:   s,
	}
}

// Root return the root cid of HAMT.
func (m *Map) Root() (cid.Cid, error) {
	if err := m.root.Flush(m.store.Context()); err != nil {
		return cid.Undef, errors.Errorf("failed to flush map root: %w", err)
	}

	c, err := m.store.Put(m.store.Context(), m.root)
	if err != nil {
		return cid.Undef, errors.Errorf("writing map root object: %w", err)
	}
	m.lastCid = c

	return c, nil
}

// Put adds value `v` with key `k` to the hamt store.
func (m *Map) Put(k Keyer, v cbg.CBORMarshaler) error {
	if err := m.root.Set(m.store.Context(), k.Key(), v); err != nil {
		return errors.Errorf("map put failed set in node %v with key %v value %v: %w", m.lastCid, k.Key(), v, err)
	}
	return nil
}

// Get puts the value at `k` into `out`.
func (m *Map) Get(k Keyer, out cbg.CBORUnmarshaler) (bool, error) {
	if err := m.root.Find(m.store.Context(), k.Key(), out); err != nil {
		if err == hamt.ErrNotFound {
			return false, nil
		}
		return false, errors.Errorf("map get failed find in node %v with key %v: %w", m.lastCid, k.Key(), err)
	}
	return true, nil
}

// Delete removes the value at `k` from the hamt store.
func (m *Map) Delete(k Keyer) error {
	if err := m.root.Delete(m.store.Context(), k.Key()); err != nil {
		return errors.Errorf("map delete failed in node %v key %v: %w", m.root, k.Key(), err)
	}

	return nil
}

// Iterates all entries in the map, deserializing each value in turn into `out` and then
// calling a function with the corresponding key.
// Iteration halts if the function returns an error.
// If the output parameter is nil, deserialization is skipped.
func (m *Map) ForEach(out cbg.CBORUnmarshaler, fn func(key string) error) error {
	return m.root.ForEach(m.store.Context(), func(k string, val interface{}) error {
		if out != nil {
			// Why doesn't hamt.ForEach() just return the value as bytes?
			err := out.UnmarshalCBOR(bytes.NewReader(val.(*cbg.Deferred).Raw))
			if err != nil {
				return err
			}
		}
		return fn(k)
	})
}

// Collects all the keys from the map into a slice of strings.
func (m *Map) CollectKeys() (out []string, err error) {
	err = m.ForEach(nil, func(key string) error {
		out = append(out, key)
		return nil
	})
	return
}

// IsEmpty reports whether the map holds no entries.
func (m *Map) IsEmpty() (bool, error) {
	empty := true
	err := m.ForEach(nil, func(string) error {
		empty = false
		return errStopIteration
	})
	if err != nil && err != errStopIteration {
		return false, err
	}
	return empty, nil
}

var errStopIteration = errors.New("stop")

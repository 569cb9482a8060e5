package cache

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"slices"
)

// Codec translates values to and from the byte payload stored in spill
// files. Marshal and Unmarshal must round-trip: Unmarshal(Marshal(v))
// yields a value equal to v.
type Codec[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte, v *V) error
}

// GobCodec serializes values with encoding/gob. It is the default codec
// and handles any gob-encodable value.
type GobCodec[V any] struct{}

func (GobCodec[V]) Marshal(v V) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec[V]) Unmarshal(data []byte, v *V) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// JSONCodec serializes values with encoding/json, for values that must
// stay inspectable on disk.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Marshal(v V) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec[V]) Unmarshal(data []byte, v *V) error {
	return json.Unmarshal(data, v)
}

// RawCodec stores []byte values as-is, skipping the encoding round-trip.
type RawCodec struct{}

func (RawCodec) Marshal(v []byte) ([]byte, error) {
	return v, nil
}

func (RawCodec) Unmarshal(data []byte, v *[]byte) error {
	*v = slices.Clone(data)
	return nil
}

package cache

import (
	"bytes"
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}

	keyText, got, err := decodeEnvelope(encodeEnvelope("user:42", payload))
	if err != nil {
		t.Fatalf("decodeEnvelope() error = %v", err)
	}
	if keyText != "user:42" {
		t.Errorf("keyText = %q, want %q", keyText, "user:42")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = %v, want %v", got, payload)
	}
}

func TestEnvelope_EmptyPayload(t *testing.T) {
	_, got, err := decodeEnvelope(encodeEnvelope("k", nil))
	if err != nil {
		t.Fatalf("decodeEnvelope() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("payload = %v, want empty", got)
	}
}

func TestEnvelope_Decode_Corrupt(t *testing.T) {
	valid := encodeEnvelope("k", []byte("payload"))

	futureVersion := protowire.AppendTag(nil, 1, protowire.VarintType)
	futureVersion = protowire.AppendVarint(futureVersion, envelopeVersion+1)
	futureVersion = protowire.AppendTag(futureVersion, 3, protowire.BytesType)
	futureVersion = protowire.AppendBytes(futureVersion, []byte("payload"))

	versionOnly := protowire.AppendTag(nil, 1, protowire.VarintType)
	versionOnly = protowire.AppendVarint(versionOnly, envelopeVersion)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "garbage", data: []byte{0xff, 0xff, 0xff}},
		{name: "truncated", data: valid[:len(valid)-3]},
		{name: "missing version", data: valid[2:]},
		{name: "future version", data: futureVersion},
		{name: "missing payload", data: versionOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := decodeEnvelope(tt.data); !errors.Is(err, ErrCorrupt) {
				t.Errorf("decodeEnvelope() error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestEnvelope_Decode_IgnoresUnknownFields(t *testing.T) {
	data := encodeEnvelope("k", []byte("payload"))
	data = protowire.AppendTag(data, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)

	_, payload, err := decodeEnvelope(data)
	if err != nil {
		t.Fatalf("decodeEnvelope() error = %v", err)
	}
	if string(payload) != "payload" {
		t.Errorf("payload = %q, want %q", payload, "payload")
	}
}

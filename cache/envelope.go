package cache

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Spill files are framed with protowire so that a truncated, foreign, or
// stale-format file is rejected before its payload reaches the codec:
//
//	field 1 (varint): envelope version
//	field 2 (bytes):  key text, kept for diagnostics
//	field 3 (bytes):  codec payload
const envelopeVersion = 1

func encodeEnvelope(keyText string, payload []byte) []byte {
	buf := protowire.AppendTag(nil, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, envelopeVersion)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendString(buf, keyText)
	buf = protowire.AppendTag(buf, 3, protowire.BytesType)
	buf = protowire.AppendBytes(buf, payload)
	return buf
}

func decodeEnvelope(data []byte) (keyText string, payload []byte, err error) {
	var (
		version    uint64
		sawVersion bool
		sawPayload bool
	)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", nil, fmt.Errorf("%w: malformed field tag", ErrCorrupt)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return "", nil, fmt.Errorf("%w: malformed version field", ErrCorrupt)
			}
			version, sawVersion = v, true
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", nil, fmt.Errorf("%w: malformed key field", ErrCorrupt)
			}
			keyText = s
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return "", nil, fmt.Errorf("%w: malformed payload field", ErrCorrupt)
			}
			payload, sawPayload = b, true
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", nil, fmt.Errorf("%w: malformed field %d", ErrCorrupt, num)
			}
			data = data[n:]
		}
	}
	if !sawVersion || version != envelopeVersion {
		return "", nil, fmt.Errorf("%w: envelope version %d, want %d", ErrCorrupt, version, envelopeVersion)
	}
	if !sawPayload {
		return "", nil, fmt.Errorf("%w: missing payload", ErrCorrupt)
	}
	return keyText, payload, nil
}

// Package snapshot encodes and decodes catalog snapshots.
//
// Two encodings carry the same logical content. JSON uses camelCase keys and
// enum names. Binary is the protobuf wire format of the simulator's database
// message, read and written with protowire so no generated code is needed.
// Zero values and empty lists are omitted by both encoders, so decoding either
// encoding of the same snapshot yields identical values.
package snapshot

import (
	"encoding/json"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/errors"
)

// Decode parses a snapshot blob in the given encoding.
// Malformed input returns a CodeDataLoss error.
func Decode(data []byte, enc Encoding) (*items.Snapshot, error) {
	switch enc {
	case EncodingJSON:
		var s items.Snapshot
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode json snapshot")
		}
		return &s, nil
	case EncodingBinary:
		s, err := unmarshalBinary(data)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode binary snapshot")
		}
		return s, nil
	default:
		return nil, errors.InvalidArgumentf("unknown snapshot encoding %q", enc)
	}
}

// Encode writes a snapshot in the given encoding
func Encode(s *items.Snapshot, enc Encoding) ([]byte, error) {
	if s == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	switch enc {
	case EncodingJSON:
		data, err := json.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode json snapshot")
		}
		return data, nil
	case EncodingBinary:
		return marshalBinary(s), nil
	default:
		return nil, errors.InvalidArgumentf("unknown snapshot encoding %q", enc)
	}
}

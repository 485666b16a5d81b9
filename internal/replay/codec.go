package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorrupt is returned when an encoded input log cannot be decoded.
var ErrCorrupt = errors.New("replay: corrupt input log")

// maxTicks bounds a decoded log so a damaged count cannot allocate
// unbounded memory. At 60 ticks per second it is over a week of play.
const maxTicks = 1 << 26

// EncodeInputs run-length encodes per-tick input masks as a sequence of
// (count uvarint, mask byte) pairs. Held steering and idle stretches
// collapse to a few bytes.
func EncodeInputs(masks []uint8) []byte {
	var out []byte
	for i := 0; i < len(masks); {
		j := i + 1
		for j < len(masks) && masks[j] == masks[i] {
			j++
		}
		out = binary.AppendUvarint(out, uint64(j-i))
		out = append(out, masks[i])
		i = j
	}
	return out
}

// DecodeInputs reverses EncodeInputs.
func DecodeInputs(data []byte) ([]uint8, error) {
	var masks []uint8
	for len(data) > 0 {
		count, n := binary.Uvarint(data)
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad run length", ErrCorrupt)
		}
		data = data[n:]
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: run without mask", ErrCorrupt)
		}
		if count == 0 || uint64(len(masks))+count > maxTicks {
			return nil, fmt.Errorf("%w: run length %d", ErrCorrupt, count)
		}
		mask := data[0]
		data = data[1:]
		for k := uint64(0); k < count; k++ {
			masks = append(masks, mask)
		}
	}
	return masks, nil
}

package persistence

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/dskrypa/primecache/codec"
)

// ErrTruncatedPayload is returned when a decompressed payload length is not a
// multiple of the integer width.
var ErrTruncatedPayload = errors.New("truncated cache payload")

// Unsigned is the set of integer widths a frontier can be encoded with.
type Unsigned interface {
	~uint32 | ~uint64
}

// EncodeFrontier serializes primes as raw little-endian fixed-width integers
// and compresses the result with c. If c is nil, codec.Default is used.
// Safety: validates alignment before the unsafe conversion.
func EncodeFrontier[W Unsigned](primes []W, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	var raw []byte
	if len(primes) > 0 {
		if err := validateAlignment(primes); err != nil {
			return nil, err
		}

		// Direct memory conversion (no allocation)
		size := int(unsafe.Sizeof(primes[0]))
		raw = unsafe.Slice((*byte)(unsafe.Pointer(&primes[0])), len(primes)*size)
	}

	return c.Compress(raw)
}

// DecodeFrontier decompresses data with c and reinterprets the payload as a
// slice of fixed-width integers. If c is nil, codec.Default is used.
func DecodeFrontier[W Unsigned](data []byte, c codec.Codec) ([]W, error) {
	if c == nil {
		c = codec.Default
	}

	raw, err := c.Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var zero W
	size := int(unsafe.Sizeof(zero))
	if len(raw)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of width %d", ErrTruncatedPayload, len(raw), size)
	}

	primes := make([]W, len(raw)/size)
	byteSlice := unsafe.Slice((*byte)(unsafe.Pointer(&primes[0])), len(raw))
	copy(byteSlice, raw)
	return primes, nil
}

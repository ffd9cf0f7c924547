// Package codec provides the compression codecs used for prime cache files.
//
// The cache payload is a flat run of fixed-width integers, which compresses
// extremely well; gzip is the default because it keeps cache files readable
// by generic gzip tooling. Zstd and LZ4 trade that compatibility for speed.
package codec

import (
	"fmt"
	"strings"
)

// Codec compresses and decompresses a cache payload as a whole.
//
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name returns the codec identifier (e.g. "gzip").
	Name() string

	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress returns the original payload for data produced by Compress.
	Decompress(data []byte) ([]byte, error)
}

// Default is the codec used when none is configured.
var Default Codec = Gzip{}

// ByName returns the codec registered under name.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "gzip", "gz":
		return Gzip{}, nil
	case "zstd":
		return Zstd{}, nil
	case "lz4":
		return LZ4{}, nil
	case "none", "raw":
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %q", name)
	}
}

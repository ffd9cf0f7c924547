package persistence

import (
	"encoding/binary"
	"testing"

	"github.com/dskrypa/primecache/codec"
)

func TestEncodeDecodeFrontier_Uint64(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

	data, err := EncodeFrontier(primes, codec.Gzip{})
	if err != nil {
		t.Fatalf("EncodeFrontier failed: %v", err)
	}

	loaded, err := DecodeFrontier[uint64](data, codec.Gzip{})
	if err != nil {
		t.Fatalf("DecodeFrontier failed: %v", err)
	}

	if len(loaded) != len(primes) {
		t.Fatalf("length mismatch: got %d, want %d", len(loaded), len(primes))
	}
	for i, p := range primes {
		if loaded[i] != p {
			t.Errorf("element %d mismatch: got %d, want %d", i, loaded[i], p)
		}
	}
}

func TestEncodeDecodeFrontier_Uint32(t *testing.T) {
	primes := []uint32{2, 3, 5, 7, 11, 13}

	data, err := EncodeFrontier(primes, codec.None{})
	if err != nil {
		t.Fatalf("EncodeFrontier failed: %v", err)
	}

	// With codec.None the payload is the raw little-endian encoding.
	if len(data) != 4*len(primes) {
		t.Fatalf("payload size mismatch: got %d, want %d", len(data), 4*len(primes))
	}
	for i, p := range primes {
		if got := binary.LittleEndian.Uint32(data[i*4:]); got != p {
			t.Errorf("raw payload element %d: got %d, want %d", i, got, p)
		}
	}

	loaded, err := DecodeFrontier[uint32](data, codec.None{})
	if err != nil {
		t.Fatalf("DecodeFrontier failed: %v", err)
	}
	for i, p := range primes {
		if loaded[i] != p {
			t.Errorf("element %d mismatch: got %d, want %d", i, loaded[i], p)
		}
	}
}

func TestDecodeFrontier_Truncated(t *testing.T) {
	// 7 bytes cannot hold a whole number of uint64 values.
	if _, err := DecodeFrontier[uint64]([]byte{1, 2, 3, 4, 5, 6, 7}, codec.None{}); err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestEncodeDecodeFrontier_Empty(t *testing.T) {
	data, err := EncodeFrontier[uint64](nil, codec.Gzip{})
	if err != nil {
		t.Fatalf("EncodeFrontier(nil) failed: %v", err)
	}

	loaded, err := DecodeFrontier[uint64](data, codec.Gzip{})
	if err != nil {
		t.Fatalf("DecodeFrontier failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty frontier, got %d elements", len(loaded))
	}
}

func TestDecodeFrontier_DefaultCodec(t *testing.T) {
	primes := []uint64{2, 3, 5}

	data, err := EncodeFrontier(primes, nil)
	if err != nil {
		t.Fatalf("EncodeFrontier failed: %v", err)
	}

	loaded, err := DecodeFrontier[uint64](data, nil)
	if err != nil {
		t.Fatalf("DecodeFrontier failed: %v", err)
	}
	if len(loaded) != 3 || loaded[2] != 5 {
		t.Errorf("unexpected frontier: %v", loaded)
	}
}

func TestValidatePlatform(t *testing.T) {
	if err := validatePlatform(); err != nil {
		t.Fatalf("platform validation failed: %v", err)
	}
	if PlatformInfo() == "" {
		t.Error("PlatformInfo returned empty string")
	}
}

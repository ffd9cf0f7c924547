package codec

import (
	"bytes"
	stdgzip "compress/gzip"
	"io"
	"testing"
)

func testPayload() []byte {
	// Repetitive fixed-width integer data, like a real frontier payload.
	data := make([]byte, 0, 8*1024)
	for i := 0; i < 1024; i++ {
		data = append(data, byte(i), byte(i>>8), 0, 0, 0, 0, 0, 0)
	}
	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, c := range []Codec{Gzip{}, Zstd{}, LZ4{}, None{}} {
		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := c.Compress(payload)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}

			restored, err := c.Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}

			if !bytes.Equal(payload, restored) {
				t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(restored), len(payload))
			}
		})
	}
}

func TestGzip_StandardLibraryInterop(t *testing.T) {
	payload := testPayload()

	compressed, err := Gzip{}.Compress(payload)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// Cache files must stay readable by plain gzip tooling.
	r, err := stdgzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("stdlib gzip reader failed: %v", err)
	}
	defer r.Close()

	restored, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("stdlib gzip read failed: %v", err)
	}
	if !bytes.Equal(payload, restored) {
		t.Error("stdlib gzip read returned different payload")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"gzip", "gz", "zstd", "lz4", "none", "raw"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) failed: %v", name, err)
		}
	}

	if _, err := ByName("snappy"); err == nil {
		t.Error("ByName accepted an unknown codec")
	}
}

func TestEmptyPayload(t *testing.T) {
	for _, c := range []Codec{Gzip{}, Zstd{}, LZ4{}, None{}} {
		compressed, err := c.Compress(nil)
		if err != nil {
			t.Fatalf("%s: Compress(nil) failed: %v", c.Name(), err)
		}
		restored, err := c.Decompress(compressed)
		if err != nil {
			t.Fatalf("%s: Decompress failed: %v", c.Name(), err)
		}
		if len(restored) != 0 {
			t.Errorf("%s: expected empty payload, got %d bytes", c.Name(), len(restored))
		}
	}
}

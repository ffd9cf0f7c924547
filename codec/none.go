package codec

// None stores the payload uncompressed.
type None struct{}

// Name implements Codec.
func (None) Name() string { return "none" }

// Compress implements Codec.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress implements Codec.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

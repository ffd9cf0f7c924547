// Package persistence encodes and decodes prime frontier cache payloads.
//
// The on-disk payload is a flat sequence of fixed-width little-endian
// unsigned integers in ascending order, with no header, magic bytes or
// version field, compressed by a codec.Codec. Each integer width gets its
// own dedicated cache file, so the width is implied by which file is opened.
package persistence

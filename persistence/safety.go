package persistence

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

var (
	// ErrUnsupportedArchitecture is returned when running on unsupported CPU architecture
	ErrUnsupportedArchitecture = errors.New("unsupported architecture: only amd64 and arm64 are supported")

	// ErrBigEndian is returned when running on big-endian systems
	ErrBigEndian = errors.New("big-endian systems are not supported")

	// ErrUnalignedAccess is returned when attempting unaligned memory access
	ErrUnalignedAccess = errors.New("unaligned memory access detected")
)

// init performs startup validation of platform requirements. The cache format
// is native-endian raw integers, so the payload is only portable across
// little-endian hosts.
func init() {
	if err := validatePlatform(); err != nil {
		panic(fmt.Sprintf("primecache/persistence: %v", err))
	}
}

func validatePlatform() error {
	arch := runtime.GOARCH
	if arch != "amd64" && arch != "arm64" {
		return fmt.Errorf("%w: %s", ErrUnsupportedArchitecture, arch)
	}

	if !isLittleEndian() {
		return ErrBigEndian
	}

	return nil
}

func isLittleEndian() bool {
	var test uint16 = 0x0001
	firstByte := *(*byte)(unsafe.Pointer(&test))
	return firstByte == 1
}

// validateAlignment checks that a slice is aligned to its element width
// before it is reinterpreted as bytes.
func validateAlignment[W Unsigned](slice []W) error {
	if len(slice) == 0 {
		return nil
	}

	size := uintptr(unsafe.Sizeof(slice[0]))
	ptr := uintptr(unsafe.Pointer(&slice[0]))
	if ptr%size != 0 {
		return fmt.Errorf("%w: %d-byte slice at address 0x%x", ErrUnalignedAccess, size, ptr)
	}

	return nil
}

// PlatformInfo returns information about the current platform.
func PlatformInfo() string {
	endian := "little-endian"
	if !isLittleEndian() {
		endian = "big-endian"
	}
	return fmt.Sprintf("GOOS=%s GOARCH=%s endianness=%s", runtime.GOOS, runtime.GOARCH, endian)
}

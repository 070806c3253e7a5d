package cptrie

import (
	"encoding/binary"
	"unsafe"
)

func readU16LE(b []byte) uint16     { return binary.LittleEndian.Uint16(b) }
func readU32LE(b []byte) uint32     { return binary.LittleEndian.Uint32(b) }
func writeU16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func writeU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// widthOf returns the encoded element width of T in bytes.
func widthOf[T Value]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// maxOf returns the largest value representable by T, widened.
func maxOf[T Value]() uint32 {
	return uint32(^T(0))
}

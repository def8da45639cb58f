package mmcsd

import (
	"encoding/binary"

	"github.com/sigurn/crc8"
)

// CID and CSD travel in an R2 response frame of 16 bytes, transmitted
// most significant byte first. UnpackR2 converts such a frame into a
// Register, placing frame bit 0 at register bit 0.
func UnpackR2(frame *[16]byte) Register {
	var r Register
	for i := range r {
		r[len(r)-1-i] = binary.BigEndian.Uint32(frame[4*i:])
	}
	return r
}

// PackR2 is the inverse of UnpackR2.
func PackR2(r Register) (frame [16]byte) {
	for i := range r {
		binary.BigEndian.PutUint32(frame[4*i:], r[len(r)-1-i])
	}
	return
}

// CRC-7 run through the 8 bit engine with the left shifted polynomial.
// The engine's register then holds the CRC-7 of the message in its
// upper 7 bits, which is also where the frame stores the field.
var crc7 = crc8.MakeTable(crc8.Params{Poly: 0x12, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00, Check: 0xea, Name: "CRC-7/MMC"})

func checksum(data []byte) uint8 {
	csum := crc8.Init(crc7)
	csum = crc8.Update(csum, data, crc7)
	return crc8.Complete(csum, crc7) >> 1
}

// VerifyCRC checks the CRC-7 field of a register frame, stored in bits
// 7 to 1 of the last byte and computed over the preceding 15 bytes. The
// end bit in bit 0 is not covered.
func VerifyCRC(frame *[16]byte) error {
	if checksum(frame[:15]) != frame[15]>>1 {
		return ErrChecksum
	}
	return nil
}

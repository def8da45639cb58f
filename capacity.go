package mmcsd

import "encoding/binary"

// Capacity returns the capacity stored in an SD card specific data
// register as a number of 512 byte blocks.
//
// A reserved structure version yields 0 and ErrUnknownCSD. Callers that
// want to continue with an unknown-size card may ignore the error, the
// sentinel is never a valid capacity.
func Capacity(csd *Register) (blocks uint32, err error) {
	switch csd.Bits(sdCSDv1Layout.csdStructure) {
	case 0: // CSD version 1.0
		a := csd.Bits(sdCSDv1Layout.cSize)
		b := csd.Bits(sdCSDv1Layout.cSizeMult)
		c := csd.Bits(sdCSDv1Layout.readBlLen)
		return (a + 1) << (b + 2) << (c - BlockShift), nil
	case 1: // CSD version 2.0
		return 1024 * (csd.Bits(sdCSDv2Layout.cSize) + 1), nil
	}
	return 0, ErrUnknownCSD
}

// ExtCSD is the raw 512 byte extended CSD register of an MMC card.
type ExtCSD [512]byte

// SectorCount returns the capacity as an absolute count of 512 byte
// sectors, stored little endian in bytes 212 to 215. Unlike the CSD
// size class fields this needs no version dispatch.
func (e *ExtCSD) SectorCount() uint32 {
	return binary.LittleEndian.Uint32(e[212:216])
}

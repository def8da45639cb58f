// Package mmcsd decodes the identification and configuration registers
// reported by SD and MMC cards.
//
// The package consumes raw register snapshots as delivered by a card
// transport, i.e. the 128 bit response to SEND_CID/SEND_CSD or the 512
// byte EXT_CSD block, and turns them into plain records. It performs no
// I/O and keeps no state; all functions are safe for concurrent use on
// distinct buffers.
package mmcsd

import (
	"errors"

	"github.com/clktmr/mmcsd/debug"
)

var (
	ErrUnknownCSD = errors.New("reserved CSD structure version")
	ErrChecksum   = errors.New("checksum mismatch")
)

// Addressing unit for capacity reporting, fixed by the card standards.
const (
	BlockSize  = 512
	BlockShift = 9 // 2^9 == BlockSize
)

// Register holds a 128 bit card register as four 32 bit words. Bit 0 is
// the least significant bit of the first word, bit numbering increases
// across word boundaries.
type Register [4]uint32

// Slice addresses a bit field inside a Register by the offsets of its
// last and first bit, both inclusive. A field is at most 32 bits wide
// and therefore spans at most two adjacent words.
type Slice struct {
	End, Start uint8
}

// Bits returns the field addressed by s with bit s.Start placed at bit
// zero of the result, i.e. right aligned.
//
// A slice violating End >= Start or End-Start < 32 is a defect in a
// slice table, not bad input, and is only checked in debug builds.
func (r *Register) Bits(s Slice) uint32 {
	if debug.Enabled {
		debug.Assertf(s.End >= s.Start && s.End-s.Start < 32,
			"invalid register slice [%d:%d]", s.End, s.Start)
	}

	startword := int(s.Start) / 32
	startbit := uint(s.Start) % 32
	endword := int(s.End) / 32
	endmask := uint32(1)<<(uint(s.End)%32+1) - 1

	if startword < endword { // field crosses a word boundary
		return r[startword]>>startbit | (r[endword]&endmask)<<(32-startbit)
	}
	return (r[startword] & endmask) >> startbit
}

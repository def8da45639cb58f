package mmcsd

import (
	"errors"
	"testing"
)

func TestUnpackR2(t *testing.T) {
	want := Register{0x0a400040, 0x3b377f80, 0x5b590000, 0x400e0032}
	if got := UnpackR2(&sdhcFrame); got != want {
		t.Fatalf("expected %#x, got %#x", want, got)
	}
	if got := PackR2(want); got != sdhcFrame {
		t.Fatalf("expected %x, got %x", sdhcFrame, got)
	}
}

func TestPackR2RoundTrip(t *testing.T) {
	r := Register{0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210}
	frame := PackR2(r)
	if got := UnpackR2(&frame); got != r {
		t.Fatalf("expected %#x, got %#x", r, got)
	}
}

func TestVerifyCRC(t *testing.T) {
	// CRC-7 of an all-zero message is zero, the frame's last byte
	// carries only the end bit.
	zero := [16]byte{15: 0x01}

	corrupt := func(i int, v byte) *[16]byte {
		f := zero
		f[i] ^= v
		return &f
	}

	tests := map[string]struct {
		frame *[16]byte
		err   error
	}{
		"zero":        {&zero, nil},
		"noEndBit":    {corrupt(15, 0x01), nil}, // end bit is not covered
		"badCRC":      {corrupt(15, 0x02), ErrChecksum},
		"badPayload":  {corrupt(0, 0x01), ErrChecksum},
		"badMidByte":  {corrupt(7, 0x80), ErrChecksum},
		"badLastByte": {corrupt(14, 0x01), ErrChecksum},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if err := VerifyCRC(tc.frame); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestVerifyCRCSelfConsistent(t *testing.T) {
	frame := PackR2(Register{0x0123_4567, 0x89ab_cdef, 0x0bad_f00d, 0x8765_4321})
	if err := VerifyCRC(&frame); err == nil {
		t.Fatal("expected checksum mismatch on arbitrary frame")
	}
	// patch the stored field with the computed checksum
	frame[15] = checksum(frame[:15])<<1 | 0x01
	if err := VerifyCRC(&frame); err != nil {
		t.Fatal(err)
	}
}

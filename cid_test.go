package mmcsd

import "testing"

func TestDecodeSDCID(t *testing.T) {
	var r Register
	put(&r, sdCIDLayout.mid, 0x03)
	put(&r, sdCIDLayout.oid, 0x5344) // "SD"
	name := "SD08G"
	for i, s := range sdCIDLayout.pnm {
		put(&r, s, uint32(name[len(name)-1-i]))
	}
	put(&r, sdCIDLayout.prvN, 8)
	put(&r, sdCIDLayout.prvM, 0)
	put(&r, sdCIDLayout.psn, 0xdeadbeef)
	put(&r, sdCIDLayout.mdtY, 18)
	put(&r, sdCIDLayout.mdtM, 7)
	put(&r, sdCIDLayout.crc, 0x55)

	c := DecodeSDCID(&r)
	want := SDCID{
		ManufacturerID:   0x03,
		OEMID:            0x5344,
		ProductName:      [5]byte{'S', 'D', '0', '8', 'G'},
		RevisionMajor:    8,
		RevisionMinor:    0,
		SerialNumber:     0xdeadbeef,
		ManufactureMonth: 7,
		ManufactureYear:  2018,
		CRC:              0x55,
	}
	if c != want {
		t.Fatalf("expected %+v, got %+v", want, c)
	}
}

func TestDecodeMMCCID(t *testing.T) {
	var r Register
	put(&r, mmcCIDLayout.mid, 0x11)
	put(&r, mmcCIDLayout.oid, 0x0100)
	name := "MMC04G"
	for i, s := range mmcCIDLayout.pnm {
		put(&r, s, uint32(name[len(name)-1-i]))
	}
	put(&r, mmcCIDLayout.prvN, 4)
	put(&r, mmcCIDLayout.prvM, 2)
	put(&r, mmcCIDLayout.psn, 0x12345678)
	put(&r, mmcCIDLayout.mdtM, 11)
	put(&r, mmcCIDLayout.mdtY, 13)
	put(&r, mmcCIDLayout.crc, 0x2a)

	c := DecodeMMCCID(&r)
	want := MMCCID{
		ManufacturerID:   0x11,
		OEMID:            0x0100,
		ProductName:      [6]byte{'M', 'M', 'C', '0', '4', 'G'},
		RevisionMajor:    4,
		RevisionMinor:    2,
		SerialNumber:     0x12345678,
		ManufactureMonth: 11,
		ManufactureYear:  2010,
		CRC:              0x2a,
	}
	if c != want {
		t.Fatalf("expected %+v, got %+v", want, c)
	}
}

// The name's first character lives in the highest product name slice.
func TestProductNameOrder(t *testing.T) {
	var r Register
	put(&r, Slice{103, 96}, 'A')
	if c := DecodeSDCID(&r); c.ProductName[0] != 'A' {
		t.Errorf("SD: expected 'A' at position 0, got %q", c.ProductName)
	}
	if c := DecodeMMCCID(&r); c.ProductName[0] != 'A' {
		t.Errorf("MMC: expected 'A' at position 0, got %q", c.ProductName)
	}
}

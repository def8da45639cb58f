package mmcsd

// SDCID is the decoded card identification register of an SD card.
type SDCID struct {
	ManufacturerID   uint8
	OEMID            uint16
	ProductName      [5]byte
	RevisionMajor    uint8
	RevisionMinor    uint8
	SerialNumber     uint32
	ManufactureMonth uint8
	ManufactureYear  uint16
	CRC              uint8
}

// MMCCID is the decoded card identification register of an MMC card.
// Compared to SD the product name is one byte longer and the
// manufacturing date fields trade places.
type MMCCID struct {
	ManufacturerID   uint8
	OEMID            uint16
	ProductName      [6]byte
	RevisionMajor    uint8
	RevisionMinor    uint8
	SerialNumber     uint32
	ManufactureMonth uint8
	ManufactureYear  uint16
	CRC              uint8
}

// Bit offsets per SD Physical Layer specification, §5.2. The product
// name slices are ordered low offset first, the name's first character
// lives in the highest slice.
var sdCIDLayout = struct {
	mid, oid   Slice
	pnm        [5]Slice
	prvN, prvM Slice
	psn        Slice
	mdtY, mdtM Slice
	crc        Slice
}{
	mid:  Slice{127, 120},
	oid:  Slice{119, 104},
	pnm:  [5]Slice{{71, 64}, {79, 72}, {87, 80}, {95, 88}, {103, 96}},
	prvN: Slice{63, 60},
	prvM: Slice{59, 56},
	psn:  Slice{55, 24},
	mdtY: Slice{19, 12},
	mdtM: Slice{11, 8},
	crc:  Slice{7, 1},
}

// Bit offsets per JESD84, CID register.
var mmcCIDLayout = struct {
	mid, oid   Slice
	pnm        [6]Slice
	prvN, prvM Slice
	psn        Slice
	mdtY, mdtM Slice
	crc        Slice
}{
	mid:  Slice{127, 120},
	oid:  Slice{119, 104},
	pnm:  [6]Slice{{63, 56}, {71, 64}, {79, 72}, {87, 80}, {95, 88}, {103, 96}},
	prvN: Slice{55, 52},
	prvM: Slice{51, 48},
	psn:  Slice{47, 16},
	mdtM: Slice{15, 12},
	mdtY: Slice{11, 8},
	crc:  Slice{7, 1},
}

// DecodeSDCID decodes the identification register of an SD card. The
// manufacturing year counts from 2000.
func DecodeSDCID(cid *Register) SDCID {
	c := SDCID{
		ManufacturerID:   uint8(cid.Bits(sdCIDLayout.mid)),
		OEMID:            uint16(cid.Bits(sdCIDLayout.oid)),
		RevisionMajor:    uint8(cid.Bits(sdCIDLayout.prvN)),
		RevisionMinor:    uint8(cid.Bits(sdCIDLayout.prvM)),
		SerialNumber:     cid.Bits(sdCIDLayout.psn),
		ManufactureMonth: uint8(cid.Bits(sdCIDLayout.mdtM)),
		ManufactureYear:  uint16(cid.Bits(sdCIDLayout.mdtY)) + 2000,
		CRC:              uint8(cid.Bits(sdCIDLayout.crc)),
	}
	for i, s := range sdCIDLayout.pnm {
		c.ProductName[len(c.ProductName)-1-i] = byte(cid.Bits(s))
	}
	return c
}

// DecodeMMCCID decodes the identification register of an MMC card. The
// manufacturing year counts from 1997.
func DecodeMMCCID(cid *Register) MMCCID {
	c := MMCCID{
		ManufacturerID:   uint8(cid.Bits(mmcCIDLayout.mid)),
		OEMID:            uint16(cid.Bits(mmcCIDLayout.oid)),
		RevisionMajor:    uint8(cid.Bits(mmcCIDLayout.prvN)),
		RevisionMinor:    uint8(cid.Bits(mmcCIDLayout.prvM)),
		SerialNumber:     cid.Bits(mmcCIDLayout.psn),
		ManufactureMonth: uint8(cid.Bits(mmcCIDLayout.mdtM)),
		ManufactureYear:  uint16(cid.Bits(mmcCIDLayout.mdtY)) + 1997,
		CRC:              uint8(cid.Bits(mmcCIDLayout.crc)),
	}
	for i, s := range mmcCIDLayout.pnm {
		c.ProductName[len(c.ProductName)-1-i] = byte(cid.Bits(s))
	}
	return c
}

package mmcsd

// SDCSD is a decoded SD card specific data register of either version.
// It is a closed set: only *SDCSDv1 and *SDCSDv2 implement it, new
// structure versions have to be added to DecodeSDCSD.
type SDCSD interface {
	// BlockCount returns the addressable capacity in 512 byte blocks.
	BlockCount() uint32

	sdCSD()
}

// SDCSDv1 is the decoded card specific data register of a standard
// capacity SD card (CSD version 1.0).
type SDCSDv1 struct {
	Structure        uint8
	TAAC             uint8
	NSAC             uint8
	TranSpeed        uint8
	CCC              uint16
	ReadBlockLen     uint8
	ReadPartial      bool
	WriteMisalign    bool
	ReadMisalign     bool
	DSRImplemented   bool
	CSize            uint16
	CSizeMult        uint8
	EraseBlockEnable bool
	EraseSectorSize  uint8
	WPGroupSize      uint8
	WPGroupEnable    bool
	R2WFactor        uint8
	WriteBlockLen    uint8
	WritePartial     bool
	FileFormatGroup  bool
	Copy             bool
	PermWriteProtect bool
	TmpWriteProtect  bool
	FileFormat       uint8
	CRC              uint8
}

// SDCSDv2 is the decoded card specific data register of a high or
// extended capacity SD card (CSD version 2.0). The size class fields of
// version 1.0 are replaced by a single wide CSize.
type SDCSDv2 struct {
	Structure        uint8
	TAAC             uint8
	NSAC             uint8
	TranSpeed        uint8
	CCC              uint16
	ReadBlockLen     uint8
	ReadPartial      bool
	WriteMisalign    bool
	ReadMisalign     bool
	DSRImplemented   bool
	CSize            uint32
	EraseBlockEnable bool
	EraseSectorSize  uint8
	WPGroupSize      uint8
	WPGroupEnable    bool
	R2WFactor        uint8
	WriteBlockLen    uint8
	WritePartial     bool
	FileFormatGroup  bool
	Copy             bool
	PermWriteProtect bool
	TmpWriteProtect  bool
	FileFormat       uint8
	CRC              uint8
}

// MMCCSD is the decoded card specific data register of an MMC card.
type MMCCSD struct {
	Structure        uint8
	SpecVers         uint8
	TAAC             uint8
	NSAC             uint8
	TranSpeed        uint8
	CCC              uint16
	ReadBlockLen     uint8
	ReadPartial      bool
	WriteMisalign    bool
	ReadMisalign     bool
	DSRImplemented   bool
	CSize            uint16
	VDDRCurrMin      uint8
	VDDRCurrMax      uint8
	VDDWCurrMin      uint8
	VDDWCurrMax      uint8
	CSizeMult        uint8
	EraseGroupSize   uint8
	EraseGroupMult   uint8
	WPGroupSize      uint8
	WPGroupEnable    bool
	R2WFactor        uint8
	WriteBlockLen    uint8
	WritePartial     bool
	FileFormatGroup  bool
	Copy             bool
	PermWriteProtect bool
	TmpWriteProtect  bool
	FileFormat       uint8
	ECC              uint8
	CRC              uint8
}

// Bit offsets per SD Physical Layer specification, §5.3.2.
var sdCSDv1Layout = struct {
	csdStructure     Slice
	taac, nsac       Slice
	tranSpeed        Slice
	ccc              Slice
	readBlLen        Slice
	readBlPartial    Slice
	writeBlkMisalign Slice
	readBlkMisalign  Slice
	dsrImp           Slice
	cSize            Slice
	cSizeMult        Slice
	eraseBlkEn       Slice
	eraseSectorSize  Slice
	wpGrpSize        Slice
	wpGrpEnable      Slice
	r2wFactor        Slice
	writeBlLen       Slice
	writeBlPartial   Slice
	fileFormatGrp    Slice
	copy             Slice
	permWriteProtect Slice
	tmpWriteProtect  Slice
	fileFormat       Slice
	crc              Slice
}{
	csdStructure:     Slice{127, 126},
	taac:             Slice{119, 112},
	nsac:             Slice{111, 104},
	tranSpeed:        Slice{103, 96},
	ccc:              Slice{95, 84},
	readBlLen:        Slice{83, 80},
	readBlPartial:    Slice{79, 79},
	writeBlkMisalign: Slice{78, 78},
	readBlkMisalign:  Slice{77, 77},
	dsrImp:           Slice{76, 76},
	cSize:            Slice{73, 62},
	cSizeMult:        Slice{49, 47},
	eraseBlkEn:       Slice{46, 46},
	eraseSectorSize:  Slice{45, 39},
	wpGrpSize:        Slice{38, 32},
	wpGrpEnable:      Slice{31, 31},
	r2wFactor:        Slice{28, 26},
	writeBlLen:       Slice{25, 22},
	writeBlPartial:   Slice{21, 21},
	fileFormatGrp:    Slice{15, 15},
	copy:             Slice{14, 14},
	permWriteProtect: Slice{13, 13},
	tmpWriteProtect:  Slice{12, 12},
	fileFormat:       Slice{11, 10},
	crc:              Slice{7, 1},
}

// Bit offsets per SD Physical Layer specification, §5.3.3.
var sdCSDv2Layout = struct {
	csdStructure     Slice
	taac, nsac       Slice
	tranSpeed        Slice
	ccc              Slice
	readBlLen        Slice
	readBlPartial    Slice
	writeBlkMisalign Slice
	readBlkMisalign  Slice
	dsrImp           Slice
	cSize            Slice
	eraseBlkEn       Slice
	eraseSectorSize  Slice
	wpGrpSize        Slice
	wpGrpEnable      Slice
	r2wFactor        Slice
	writeBlLen       Slice
	writeBlPartial   Slice
	fileFormatGrp    Slice
	copy             Slice
	permWriteProtect Slice
	tmpWriteProtect  Slice
	fileFormat       Slice
	crc              Slice
}{
	csdStructure:     Slice{127, 126},
	taac:             Slice{119, 112},
	nsac:             Slice{111, 104},
	tranSpeed:        Slice{103, 96},
	ccc:              Slice{95, 84},
	readBlLen:        Slice{83, 80},
	readBlPartial:    Slice{79, 79},
	writeBlkMisalign: Slice{78, 78},
	readBlkMisalign:  Slice{77, 77},
	dsrImp:           Slice{76, 76},
	cSize:            Slice{69, 48},
	eraseBlkEn:       Slice{46, 46},
	eraseSectorSize:  Slice{45, 39},
	wpGrpSize:        Slice{38, 32},
	wpGrpEnable:      Slice{31, 31},
	r2wFactor:        Slice{28, 26},
	writeBlLen:       Slice{25, 22},
	writeBlPartial:   Slice{21, 21},
	fileFormatGrp:    Slice{15, 15},
	copy:             Slice{14, 14},
	permWriteProtect: Slice{13, 13},
	tmpWriteProtect:  Slice{12, 12},
	fileFormat:       Slice{11, 10},
	crc:              Slice{7, 1},
}

// Bit offsets per JESD84, CSD register.
var mmcCSDLayout = struct {
	csdStructure     Slice
	specVers         Slice
	taac, nsac       Slice
	tranSpeed        Slice
	ccc              Slice
	readBlLen        Slice
	readBlPartial    Slice
	writeBlkMisalign Slice
	readBlkMisalign  Slice
	dsrImp           Slice
	cSize            Slice
	vddRCurrMin      Slice
	vddRCurrMax      Slice
	vddWCurrMin      Slice
	vddWCurrMax      Slice
	cSizeMult        Slice
	eraseGrpSize     Slice
	eraseGrpMult     Slice
	wpGrpSize        Slice
	wpGrpEnable      Slice
	r2wFactor        Slice
	writeBlLen       Slice
	writeBlPartial   Slice
	fileFormatGrp    Slice
	copy             Slice
	permWriteProtect Slice
	tmpWriteProtect  Slice
	fileFormat       Slice
	ecc              Slice
	crc              Slice
}{
	csdStructure:     Slice{127, 126},
	specVers:         Slice{125, 122},
	taac:             Slice{119, 112},
	nsac:             Slice{111, 104},
	tranSpeed:        Slice{103, 96},
	ccc:              Slice{95, 84},
	readBlLen:        Slice{83, 80},
	readBlPartial:    Slice{79, 79},
	writeBlkMisalign: Slice{78, 78},
	readBlkMisalign:  Slice{77, 77},
	dsrImp:           Slice{76, 76},
	cSize:            Slice{73, 62},
	vddRCurrMin:      Slice{61, 59},
	vddRCurrMax:      Slice{58, 56},
	vddWCurrMin:      Slice{55, 53},
	vddWCurrMax:      Slice{52, 50},
	cSizeMult:        Slice{49, 47},
	eraseGrpSize:     Slice{46, 42},
	eraseGrpMult:     Slice{41, 37},
	wpGrpSize:        Slice{36, 32},
	wpGrpEnable:      Slice{31, 31},
	r2wFactor:        Slice{28, 26},
	writeBlLen:       Slice{25, 22},
	writeBlPartial:   Slice{21, 21},
	fileFormatGrp:    Slice{15, 15},
	copy:             Slice{14, 14},
	permWriteProtect: Slice{13, 13},
	tmpWriteProtect:  Slice{12, 12},
	fileFormat:       Slice{11, 10},
	ecc:              Slice{9, 8},
	crc:              Slice{7, 1},
}

// DecodeSDCSD decodes an SD card specific data register, dispatching on
// the structure version field. A reserved version yields ErrUnknownCSD;
// the caller may still continue with an unknown-size card.
func DecodeSDCSD(csd *Register) (SDCSD, error) {
	switch csd.Bits(sdCSDv1Layout.csdStructure) {
	case 0:
		c := DecodeSDCSDv1(csd)
		return &c, nil
	case 1:
		c := DecodeSDCSDv2(csd)
		return &c, nil
	}
	return nil, ErrUnknownCSD
}

// DecodeSDCSDv1 decodes csd as a version 1.0 card specific data
// register. It does not verify the structure version field.
func DecodeSDCSDv1(csd *Register) SDCSDv1 {
	l := &sdCSDv1Layout
	return SDCSDv1{
		Structure:        uint8(csd.Bits(l.csdStructure)),
		TAAC:             uint8(csd.Bits(l.taac)),
		NSAC:             uint8(csd.Bits(l.nsac)),
		TranSpeed:        uint8(csd.Bits(l.tranSpeed)),
		CCC:              uint16(csd.Bits(l.ccc)),
		ReadBlockLen:     uint8(csd.Bits(l.readBlLen)),
		ReadPartial:      csd.Bits(l.readBlPartial) != 0,
		WriteMisalign:    csd.Bits(l.writeBlkMisalign) != 0,
		ReadMisalign:     csd.Bits(l.readBlkMisalign) != 0,
		DSRImplemented:   csd.Bits(l.dsrImp) != 0,
		CSize:            uint16(csd.Bits(l.cSize)),
		CSizeMult:        uint8(csd.Bits(l.cSizeMult)),
		EraseBlockEnable: csd.Bits(l.eraseBlkEn) != 0,
		EraseSectorSize:  uint8(csd.Bits(l.eraseSectorSize)),
		WPGroupSize:      uint8(csd.Bits(l.wpGrpSize)),
		WPGroupEnable:    csd.Bits(l.wpGrpEnable) != 0,
		R2WFactor:        uint8(csd.Bits(l.r2wFactor)),
		WriteBlockLen:    uint8(csd.Bits(l.writeBlLen)),
		WritePartial:     csd.Bits(l.writeBlPartial) != 0,
		FileFormatGroup:  csd.Bits(l.fileFormatGrp) != 0,
		Copy:             csd.Bits(l.copy) != 0,
		PermWriteProtect: csd.Bits(l.permWriteProtect) != 0,
		TmpWriteProtect:  csd.Bits(l.tmpWriteProtect) != 0,
		FileFormat:       uint8(csd.Bits(l.fileFormat)),
		CRC:              uint8(csd.Bits(l.crc)),
	}
}

// DecodeSDCSDv2 decodes csd as a version 2.0 card specific data
// register. It does not verify the structure version field.
func DecodeSDCSDv2(csd *Register) SDCSDv2 {
	l := &sdCSDv2Layout
	return SDCSDv2{
		Structure:        uint8(csd.Bits(l.csdStructure)),
		TAAC:             uint8(csd.Bits(l.taac)),
		NSAC:             uint8(csd.Bits(l.nsac)),
		TranSpeed:        uint8(csd.Bits(l.tranSpeed)),
		CCC:              uint16(csd.Bits(l.ccc)),
		ReadBlockLen:     uint8(csd.Bits(l.readBlLen)),
		ReadPartial:      csd.Bits(l.readBlPartial) != 0,
		WriteMisalign:    csd.Bits(l.writeBlkMisalign) != 0,
		ReadMisalign:     csd.Bits(l.readBlkMisalign) != 0,
		DSRImplemented:   csd.Bits(l.dsrImp) != 0,
		CSize:            csd.Bits(l.cSize),
		EraseBlockEnable: csd.Bits(l.eraseBlkEn) != 0,
		EraseSectorSize:  uint8(csd.Bits(l.eraseSectorSize)),
		WPGroupSize:      uint8(csd.Bits(l.wpGrpSize)),
		WPGroupEnable:    csd.Bits(l.wpGrpEnable) != 0,
		R2WFactor:        uint8(csd.Bits(l.r2wFactor)),
		WriteBlockLen:    uint8(csd.Bits(l.writeBlLen)),
		WritePartial:     csd.Bits(l.writeBlPartial) != 0,
		FileFormatGroup:  csd.Bits(l.fileFormatGrp) != 0,
		Copy:             csd.Bits(l.copy) != 0,
		PermWriteProtect: csd.Bits(l.permWriteProtect) != 0,
		TmpWriteProtect:  csd.Bits(l.tmpWriteProtect) != 0,
		FileFormat:       uint8(csd.Bits(l.fileFormat)),
		CRC:              uint8(csd.Bits(l.crc)),
	}
}

// DecodeMMCCSD decodes the card specific data register of an MMC card.
func DecodeMMCCSD(csd *Register) MMCCSD {
	l := &mmcCSDLayout
	return MMCCSD{
		Structure:        uint8(csd.Bits(l.csdStructure)),
		SpecVers:         uint8(csd.Bits(l.specVers)),
		TAAC:             uint8(csd.Bits(l.taac)),
		NSAC:             uint8(csd.Bits(l.nsac)),
		TranSpeed:        uint8(csd.Bits(l.tranSpeed)),
		CCC:              uint16(csd.Bits(l.ccc)),
		ReadBlockLen:     uint8(csd.Bits(l.readBlLen)),
		ReadPartial:      csd.Bits(l.readBlPartial) != 0,
		WriteMisalign:    csd.Bits(l.writeBlkMisalign) != 0,
		ReadMisalign:     csd.Bits(l.readBlkMisalign) != 0,
		DSRImplemented:   csd.Bits(l.dsrImp) != 0,
		CSize:            uint16(csd.Bits(l.cSize)),
		VDDRCurrMin:      uint8(csd.Bits(l.vddRCurrMin)),
		VDDRCurrMax:      uint8(csd.Bits(l.vddRCurrMax)),
		VDDWCurrMin:      uint8(csd.Bits(l.vddWCurrMin)),
		VDDWCurrMax:      uint8(csd.Bits(l.vddWCurrMax)),
		CSizeMult:        uint8(csd.Bits(l.cSizeMult)),
		EraseGroupSize:   uint8(csd.Bits(l.eraseGrpSize)),
		EraseGroupMult:   uint8(csd.Bits(l.eraseGrpMult)),
		WPGroupSize:      uint8(csd.Bits(l.wpGrpSize)),
		WPGroupEnable:    csd.Bits(l.wpGrpEnable) != 0,
		R2WFactor:        uint8(csd.Bits(l.r2wFactor)),
		WriteBlockLen:    uint8(csd.Bits(l.writeBlLen)),
		WritePartial:     csd.Bits(l.writeBlPartial) != 0,
		FileFormatGroup:  csd.Bits(l.fileFormatGrp) != 0,
		Copy:             csd.Bits(l.copy) != 0,
		PermWriteProtect: csd.Bits(l.permWriteProtect) != 0,
		TmpWriteProtect:  csd.Bits(l.tmpWriteProtect) != 0,
		FileFormat:       uint8(csd.Bits(l.fileFormat)),
		ECC:              uint8(csd.Bits(l.ecc)),
		CRC:              uint8(csd.Bits(l.crc)),
	}
}

func (c *SDCSDv1) sdCSD() {}
func (c *SDCSDv2) sdCSD() {}

// BlockCount returns the capacity in 512 byte blocks encoded in the
// size class fields.
func (c *SDCSDv1) BlockCount() uint32 {
	return (uint32(c.CSize) + 1) << (c.CSizeMult + 2) << (c.ReadBlockLen - BlockShift)
}

// BlockCount returns the capacity in 512 byte blocks.
func (c *SDCSDv2) BlockCount() uint32 {
	return 1024 * (c.CSize + 1)
}

// BlockCount returns the capacity in 512 byte blocks encoded in the
// size class fields. High capacity cards report the escape value 0xfff
// in CSize and their actual capacity in the extended CSD instead, see
// (*ExtCSD).SectorCount.
func (c *MMCCSD) BlockCount() uint32 {
	return (uint32(c.CSize) + 1) << (c.CSizeMult + 2) << (c.ReadBlockLen - BlockShift)
}

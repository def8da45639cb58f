package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/clktmr/mmcsd"
)

func must[T any](ret T, err error) T {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return ret
}

const usageString = `MMC/SD register inspector.

Usage:

	%s <command> [flags] <dump>

The commands are:

	cid	decode a card identification register
	csd	decode a card specific data register
	extcsd	decode an extended CSD register

A dump is either a hex string or the path of a file containing one.
CID and CSD dumps are the 16 byte response frame as received from the
card, most significant byte first.
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

// readDump parses arg as hex, either directly or from the file it names.
func readDump(arg string, size int) ([]byte, error) {
	data := []byte(arg)
	if raw, err := os.ReadFile(arg); err == nil {
		data = raw
	}
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(data))
	buf, err := hex.DecodeString(stripped)
	if err != nil {
		return nil, err
	}
	if len(buf) != size {
		return nil, fmt.Errorf("expected %d byte dump, got %d", size, len(buf))
	}
	return buf, nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	flags := flag.NewFlagSet(cmd, flag.ExitOnError)
	mmc := flags.Bool("mmc", false, "decode as MMC register")
	crc := flags.Bool("crc", false, "verify the frame's CRC-7 field")
	flags.Parse(flag.Args()[1:])

	if flags.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch cmd {
	case "cid", "csd":
		frame := [16]byte(must(readDump(flags.Arg(0), 16)))
		if *crc {
			must(0, mmcsd.VerifyCRC(&frame))
		}
		reg := mmcsd.UnpackR2(&frame)
		if cmd == "cid" {
			printCID(&reg, *mmc)
		} else {
			printCSD(&reg, *mmc)
		}
	case "extcsd":
		ext := mmcsd.ExtCSD(must(readDump(flags.Arg(0), 512)))
		fmt.Printf("Sector count:     %d (%d MiB)\n",
			ext.SectorCount(), uint64(ext.SectorCount())*mmcsd.BlockSize>>20)
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "%s: unknown command\n", cmd)
		flag.Usage()
		os.Exit(1)
	}
}

func printCID(reg *mmcsd.Register, mmc bool) {
	if mmc {
		c := mmcsd.DecodeMMCCID(reg)
		printIdentity(c.ManufacturerID, c.OEMID, string(c.ProductName[:]),
			c.RevisionMajor, c.RevisionMinor, c.SerialNumber,
			c.ManufactureYear, c.ManufactureMonth, c.CRC)
		return
	}
	c := mmcsd.DecodeSDCID(reg)
	printIdentity(c.ManufacturerID, c.OEMID, string(c.ProductName[:]),
		c.RevisionMajor, c.RevisionMinor, c.SerialNumber,
		c.ManufactureYear, c.ManufactureMonth, c.CRC)
}

func printIdentity(mid uint8, oid uint16, pnm string, prvN, prvM uint8,
	psn uint32, year uint16, month uint8, crc uint8) {
	fmt.Printf("Manufacturer ID:  %#02x\n", mid)
	fmt.Printf("OEM ID:           %q\n", string([]byte{byte(oid >> 8), byte(oid)}))
	fmt.Printf("Product name:     %q\n", pnm)
	fmt.Printf("Revision:         %d.%d\n", prvN, prvM)
	fmt.Printf("Serial number:    %#08x\n", psn)
	fmt.Printf("Manufactured:     %04d-%02d\n", year, month)
	fmt.Printf("CRC:              %#02x\n", crc)
}

func printCSD(reg *mmcsd.Register, mmc bool) {
	if mmc {
		c := mmcsd.DecodeMMCCSD(reg)
		fmt.Printf("%+v\n", c)
		printCapacity(c.BlockCount())
		return
	}
	c, err := mmcsd.DecodeSDCSD(reg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	switch c := c.(type) {
	case *mmcsd.SDCSDv1:
		fmt.Printf("%+v\n", *c)
	case *mmcsd.SDCSDv2:
		fmt.Printf("%+v\n", *c)
	}
	printCapacity(c.BlockCount())
}

func printCapacity(blocks uint32) {
	fmt.Printf("Capacity:         %d blocks (%d MiB)\n",
		blocks, uint64(blocks)*mmcsd.BlockSize>>20)
}

// Command huffpack compresses and decompresses text files.
//
// Usage:
//
//     huffpack -mode compress -in book.txt -out book.hp
//     huffpack -mode decompress -in book.hp -out book.txt
//     huffpack -mode roundtrip -in book.txt -compressed book.hp -out decompressed.txt
//
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chronos-tachyon/huffpack"
)

func main() {
	mode := flag.String("mode", "roundtrip", "one of: compress, decompress, roundtrip")
	in := flag.String("in", "", "input file")
	out := flag.String("out", "", "output file")
	compressed := flag.String("compressed", "", "compressed file written and read back in roundtrip mode")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch *mode {
	case "compress":
		err = compressFile(*in, *out)
	case "decompress":
		err = decompressFile(*in, *out)
	case "roundtrip":
		if *compressed == "" {
			*compressed = *in + ".hp"
		}
		err = roundTrip(*in, *compressed, *out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func compressFile(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	now := time.Now()
	blob, stats, err := huffpack.CompressStats(string(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	log.Printf("compressed %s in %v: %v", inPath, time.Since(now), stats)

	return os.WriteFile(outPath, blob, 0o666)
}

func decompressFile(inPath, outPath string) error {
	blob, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	now := time.Now()
	text, err := huffpack.Decompress(blob)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	log.Printf("decompressed %s in %v: %d -> %d bytes", inPath, time.Since(now), len(blob), len(text))

	return os.WriteFile(outPath, []byte(text), 0o666)
}

func roundTrip(inPath, compressedPath, outPath string) error {
	if err := compressFile(inPath, compressedPath); err != nil {
		return err
	}
	return decompressFile(compressedPath, outPath)
}

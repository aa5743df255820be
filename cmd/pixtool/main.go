// Command pixtool inspects and repacks single pixel words, mainly to debug
// byte-order expectations of external buffers.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/vearutop/pixfmt"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "decode":
		if err := runDecode(os.Args[2:]); err != nil {
			fail(err)
		}
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pixtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  decode  -format rgba8888|abgr8888|bgra8888|rgb565 -raw 0x44332211")
	fmt.Fprintln(os.Stderr, "  convert -from rgba8888|abgr8888|bgra8888 -to rgba8888|abgr8888|bgra8888 -raw 0x44332211")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func parseWord(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing -raw value")
	}

	return strconv.ParseUint(s, 0, 32)
}

// channels reads every channel of a packed word through the contract.
func channels[R pixfmt.Raw[uint8]](r R) []uint8 {
	out := make([]uint8, r.ChannelCount())
	for i := range out {
		out[i] = r.ChannelUnchecked(i)
	}

	return out
}

func decodeWord(format string, raw uint64) ([]uint8, error) {
	switch format {
	case "rgba8888":
		return channels(pixfmt.RGBA8888(raw)), nil
	case "abgr8888":
		return channels(pixfmt.ABGR8888(raw)), nil
	case "bgra8888":
		return channels(pixfmt.BGRA8888(raw)), nil
	case "rgb565":
		return channels(pixfmt.RGB565(raw)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	format := fs.String("format", "rgba8888", "pixel format")
	rawStr := fs.String("raw", "", "raw pixel word, e.g. 0x44332211")
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := parseWord(*rawStr)
	if err != nil {
		return err
	}

	ch, err := decodeWord(*format, raw)
	if err != nil {
		return err
	}

	names := "RGBA"
	for i, v := range ch {
		fmt.Printf("%c: 0x%02X\n", names[i], v)
	}

	return nil
}

func packWord(format string, ch []uint8) (uint32, error) {
	switch format {
	case "rgba8888":
		p, err := pixfmt.FromChannels[pixfmt.RGBA8888, *pixfmt.RGBA8888, uint8](ch...)

		return uint32(p), err
	case "abgr8888":
		p, err := pixfmt.FromChannels[pixfmt.ABGR8888, *pixfmt.ABGR8888, uint8](ch...)

		return uint32(p), err
	case "bgra8888":
		p, err := pixfmt.FromChannels[pixfmt.BGRA8888, *pixfmt.BGRA8888, uint8](ch...)

		return uint32(p), err
	default:
		return 0, fmt.Errorf("unknown format %q", format)
	}
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	from := fs.String("from", "rgba8888", "source format")
	to := fs.String("to", "abgr8888", "target format")
	rawStr := fs.String("raw", "", "raw pixel word in the source format")
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := parseWord(*rawStr)
	if err != nil {
		return err
	}

	if *from == "rgb565" || *to == "rgb565" {
		return fmt.Errorf("convert supports the 4-channel packed formats only")
	}

	ch, err := decodeWord(*from, raw)
	if err != nil {
		return err
	}

	out, err := packWord(*to, ch)
	if err != nil {
		return err
	}

	fmt.Printf("0x%08X\n", out)

	return nil
}

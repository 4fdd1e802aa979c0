package main

import (
	"flag"
	"os"

	"github.com/iensu/gejmboj/internal/cpu"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
	"github.com/iensu/gejmboj/pkg/log"
)

func main() {
	var (
		imagePath = flag.String("image", "", "binary image to execute")
		loadAddr  = flag.Uint("load", 0x0100, "address the image is loaded and started at")
		budget    = flag.Uint64("cycles", 1_000_000, "machine cycle budget")
		trace     = flag.Bool("trace", false, "log every executed instruction")
	)
	flag.Parse()

	logger := log.New()

	if *imagePath == "" {
		logger.Errorf("no image given, use -image")
		os.Exit(1)
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		logger.Errorf("reading image: %v", err)
		os.Exit(1)
	}
	if int(*loadAddr)+len(image) > 0x10000 {
		logger.Errorf("image of %d bytes does not fit at $%04X", len(image), *loadAddr)
		os.Exit(1)
	}

	mem := memory.NewRAM()
	for i, b := range image {
		mem.Write(uint16(*loadAddr)+uint16(i), b)
	}

	var opts []cpu.Opt
	if *trace {
		opts = append(opts, cpu.WithLogger(logger))
	}
	c := cpu.New(mem, opts...)
	c.Registers.PC = uint16(*loadAddr)
	c.Registers.SP = 0xFFFE

	spent, err := c.Run(*budget)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	r := c.Registers
	logger.Infof("executed %d machine cycles", spent)
	logger.Infof("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X",
		r.Double(registers.AF), r.Double(registers.BC), r.Double(registers.DE),
		r.Double(registers.HL), r.SP, r.PC)
}

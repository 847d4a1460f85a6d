// Command gintendo runs an iNES ROM against the NES core: CPU, PPU,
// Bus and controller, presented in an ebiten window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/gintendo/internal/cartridge"
	"github.com/nescore/gintendo/internal/console"
	"github.com/nescore/gintendo/internal/debugger"
	"github.com/nescore/gintendo/internal/mappers"
	"github.com/nescore/gintendo/internal/ppu"
)

func main() {
	debug := flag.Bool("debug", false, "run an interactive debugger in this terminal instead of the emulator window")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] rom.nes\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *debug); err != nil {
		glog.Fatalln(err)
	}
}

func run(path string, debug bool) error {
	rom, err := cartridge.Load(path)
	if err != nil {
		return fmt.Errorf("gintendo: %w", err)
	}

	mapper, err := mappers.Get(rom.MapperID(), rom)
	if err != nil {
		return fmt.Errorf("gintendo: %w", err)
	}

	c := console.New(mapper)

	if debug {
		debugger.New(c, os.Stdin, os.Stdout).Run(context.Background())
		return nil
	}

	ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
	ebiten.SetWindowTitle("gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(c)
}

// Package debugger implements a small interactive REPL for stepping
// and inspecting a Console: breakpoints, single-stepping, memory
// dumps and stack inspection. Adapted from the host shell's original
// BIOS REPL; it talks to the CPU and Bus directly rather than driving
// ebiten, so it runs fine from a plain terminal alongside (or instead
// of) the graphical window.
package debugger

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/nescore/gintendo/internal/console"
)

// Debugger drives a console.Console from a line-oriented command
// prompt.
type Debugger struct {
	console *console.Console
	in      *bufio.Reader
	out     io.Writer
	breaks  map[uint16]struct{}
}

// New constructs a Debugger reading commands from in and writing
// output to out.
func New(c *console.Console, in io.Reader, out io.Writer) *Debugger {
	return &Debugger{
		console: c,
		in:      bufio.NewReader(in),
		out:     out,
		breaks:  make(map[uint16]struct{}),
	}
}

func (d *Debugger) readAddress(prompt string) uint16 {
	fmt.Fprint(d.out, prompt)
	var a uint16
	fmt.Fscanf(d.in, "%04x\n", &a)
	return a
}

// Run prints the prompt loop until the user quits or ctx is canceled.
func (d *Debugger) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprintf(d.out, "%s\n\n", d.console.CPU)
		fmt.Fprintln(d.out, "(b)reak - add breakpoint")
		fmt.Fprintln(d.out, "(c)lear - clear breakpoints")
		fmt.Fprintln(d.out, "(s)tep - step one instruction")
		fmt.Fprintln(d.out, "(t)ack - show the top of the stack")
		fmt.Fprintln(d.out, "(m)emory - dump an address range")
		fmt.Fprintln(d.out, "(q)uit - exit the debugger")
		fmt.Fprint(d.out, "choice: ")

		var in rune
		if _, err := fmt.Fscanf(d.in, "%c\n", &in); err != nil {
			return
		}

		switch in {
		case 'b', 'B':
			d.breaks[d.readAddress("breakpoint (e.g. ff15): ")] = struct{}{}
		case 'c', 'C':
			d.breaks = make(map[uint16]struct{})
		case 'q', 'Q':
			return
		case 's', 'S':
			d.console.CPU.Step()
			if _, hit := d.breaks[d.console.CPU.PC]; hit {
				fmt.Fprintf(d.out, "hit breakpoint at %#04x\n", d.console.CPU.PC)
			}
		case 't', 'T':
			fmt.Fprintln(d.out)
			base := uint16(0x0100) + uint16(d.console.CPU.SP)
			for i := uint16(0); i < 3 && base+i <= 0x01FF; i++ {
				addr := base + i
				fmt.Fprintf(d.out, "%#04x: %#02x ", addr, d.console.Bus.Read(addr))
			}
			fmt.Fprintln(d.out, "\n")
		case 'm', 'M':
			fmt.Fprintln(d.out)
			low := d.readAddress("low address (e.g. f00d): ")
			high := d.readAddress("high address (e.g. beef): ")
			fmt.Fprintln(d.out)

			col := 0
			for addr := low; ; addr++ {
				fmt.Fprintf(d.out, "%#04x: %#02x ", addr, d.console.Bus.Read(addr))
				col++
				if col%5 == 0 {
					fmt.Fprintln(d.out)
				}
				if addr == high || addr == math.MaxUint16 {
					break
				}
			}
			fmt.Fprintln(d.out, "\n")
		}
	}
}

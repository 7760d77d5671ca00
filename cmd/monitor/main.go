// monitor: host-side serial monitor. Opens the device the kernel's output
// sink is wired to and streams its text to the local terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tty "github.com/mattn/go-tty"
)

var devPath = flag.String("dev", "/dev/ttyUSB0", "serial device carrying the kernel console")

func main() {
	flag.Parse()

	t, err := tty.OpenDevice(*devPath)
	if err != nil {
		log.Fatalf("open %s: %v", *devPath, err)
	}
	defer t.Close()
	restore := t.MustRaw()
	defer restore()

	fmt.Fprintf(os.Stderr, "monitoring %s (interrupt to stop)\n", *devPath)

	buf := make([]byte, 1)
	for {
		n, err := t.Input().Read(buf)
		if err != nil {
			if err == io.EOF {
				return
			}
			log.Fatalf("read %s: %v", *devPath, err)
		}
		if n == 0 {
			continue
		}
		os.Stdout.Write(buf[:n])
	}
}

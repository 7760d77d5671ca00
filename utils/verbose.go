package utils

import (
	"fmt"
	"io"
	"os"
)

// Verbose controls whether informational output is printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where informational output is printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// Logf prints a formatted line to Output when Verbose is set.
func Logf(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintf(Output, format+"\n", args...)
}

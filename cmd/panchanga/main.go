// Command panchanga computes the panchanga for a date from the terminal.
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// Command edukit runs the edukit helpers on sample data or on input given
// on the command line.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

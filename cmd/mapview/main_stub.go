//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "mapview was built without GUI support; rebuild with -tags ebiten")
	os.Exit(2)
}

// Command hjarta-config inspects a configuration assembled from files and the
// environment through the same filters and converters an application would use.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

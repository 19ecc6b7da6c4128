// The reflektor probe packaged as a native module. Build with:
//
//	go build -buildmode=c-shared -o reflektor_probe.<so|dylib|dll> ./sharedlib
//
// A host loads the artifact and invokes StartW or StartWStatus; the marker
// file is the only observable effect.
package main

import "C"

import (
	probe "github.com/sliverarmory/reflektor-probe"
)

//export StartW
func StartW() {
	probe.Start()
}

//export StartWStatus
func StartWStatus() C.int {
	return C.int(probe.StartStatus())
}

func main() {}

//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package assert

import (
	"fmt"
	"os"
)

func fatal(msg string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "FATAL: "+msg+"\n", a...)
	os.Exit(1)
}

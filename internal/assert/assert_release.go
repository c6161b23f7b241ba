// +build !debug

//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert provides invariant checks that are compiled out of release
// builds. Build with -tags debug to enable panics on failed assertions.
package assert

// DEBUG gates the cost of Assert calls. The compiler eliminates the
// wrapped call entirely when this is false, so callers still guard with
// `if assert.DEBUG { assert.Assert(...) }` to avoid evaluating arguments.
const DEBUG = false

// Assert is a no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}

// Fatal logs msg and exits the process. Used for invariant violations that
// indicate a programming error rather than a recoverable state.
func Fatal(msg string, a ...interface{}) {
	fatal(msg, a...)
}

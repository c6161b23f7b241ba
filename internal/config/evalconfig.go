//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package config

// evalConfiguration holds the static evaluator's component toggles.
type evalConfiguration struct {
	UseMobility    bool
	UsePST         bool
	UseBishopPair  bool
	UsePawnStruct  bool
	UseKingSafety  bool
	UseEndgame     bool
}

func init() {
	Settings.Eval.UseMobility = true
	Settings.Eval.UsePST = true
	Settings.Eval.UseBishopPair = true
	Settings.Eval.UsePawnStruct = true
	Settings.Eval.UseKingSafety = true
	Settings.Eval.UseEndgame = true
}

//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package config

// searchConfiguration holds the search-related settings. cmd/engine reads
// BookPath, TTSizeMB and PawnTTMB; the search package does not read them.
type searchConfiguration struct {
	// Opening book
	UseBook  bool
	BookPath string

	// Time management
	MoveOverheadMs int

	// Transposition tables
	TTSizeMB   int
	PawnTTMB   int
	UseTT      bool
	UseQSTT    bool

	// Move ordering
	UseKiller  bool
	UseHistory bool
	UseIID     bool
	IIDDepth   int

	// Pruning / reductions
	UseNullMove     bool
	NullMoveBase    int
	UseRFP          bool
	UseFutility     bool
	UseLMR          bool
	LMRMinDepth     int
	LMRMinMoveCount int

	// Root driver
	ThreatThreshold int
	FutilDepth      int
	ResignThreshold int
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/book.txt"

	Settings.Search.MoveOverheadMs = 100

	Settings.Search.TTSizeMB = 128
	Settings.Search.PawnTTMB = 16
	Settings.Search.UseTT = true
	Settings.Search.UseQSTT = true

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 5

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveBase = 1
	Settings.Search.UseRFP = true
	Settings.Search.UseFutility = true
	Settings.Search.UseLMR = true
	Settings.Search.LMRMinDepth = 4
	Settings.Search.LMRMinMoveCount = 4

	Settings.Search.ThreatThreshold = 3
	Settings.Search.FutilDepth = 6
	Settings.Search.ResignThreshold = -950
}

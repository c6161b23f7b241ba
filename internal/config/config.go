//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package config holds globally available configuration variables, set
// by defaults and optionally overridden by a TOML config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the process-wide configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// ConfFile is the path Setup reads from, relative to the working directory.
var ConfFile = "./config.toml"

// Setup reads the config file (if present) and falls back to defaults for
// anything the file does not set. Safe to call more than once; later
// calls are no-ops.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Printf("config file %q not found, using defaults (%v)", ConfFile, err)
	}
	initialized = true
}

// String renders the current configuration via reflection, for
// diagnostics.
func (c *conf) String() string {
	var sb strings.Builder
	dump := func(title string, v interface{}) {
		sb.WriteString(title)
		sb.WriteString(":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			sb.WriteString(fmt.Sprintf("%-2d: %-20s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Search", &c.Search)
	dump("Eval", &c.Eval)
	dump("Log", &c.Log)
	return sb.String()
}

type logConfiguration struct {
	LogLevel       int
	SearchLogLevel int
}

func init() {
	Settings.Log.LogLevel = 4
	Settings.Log.SearchLogLevel = 4
}

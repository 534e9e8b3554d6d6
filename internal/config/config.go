//
// corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package config holds globally available configuration variables, either
// set by defaults, read from a config file, or set by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the TOML config file, relative to the working
// directory unless absolute.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated with defaults by the
// sub-config init() functions and optionally overridden by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
	Store  storeConfiguration
}

// Setup reads the configuration file, if present, and applies it on top of
// the compiled-in defaults. Safe to call more than once; later calls are
// no-ops.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}
	initialized = true
}

// String renders the current settings for diagnostics, the way the
// teacher's config.String() does via reflection.
func (c *conf) String() string {
	var b strings.Builder
	dump := func(title string, v interface{}) {
		b.WriteString(title + ":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Search", &c.Search)
	dump("Eval", &c.Eval)
	dump("Store", &c.Store)
	dump("Log", &c.Log)
	return b.String()
}

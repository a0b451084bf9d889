/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables, either
// set by defaults or read from a TOML config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rkane/bitchess/internal/util"
)

var (
	// ConfFile holds the path to the config file (relative to the
	// working directory).
	ConfFile = "./config.toml"

	// Settings is the global configuration, read in from file (or
	// defaults when no file is found).
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

type logConfiguration struct {
	Level int
}

// searchConfiguration holds the tunables of the search package: how deep
// and how long to search by default, and the constants that shape the
// MCTS exploration/trust formulas.
type searchConfiguration struct {
	DefaultDepth         int
	DefaultTimeBudgetMs  int
	MCTSExplorationConst float64
	MCTSTrustMidpoint    float64
	MCTSTrustSlope       float64
}

func init() {
	Settings.Log.Level = 5

	Settings.Search.DefaultDepth = 4
	Settings.Search.DefaultTimeBudgetMs = 3000
	Settings.Search.MCTSExplorationConst = 1.41421356237 // sqrt(2)
	Settings.Search.MCTSTrustMidpoint = 15.0
	Settings.Search.MCTSTrustSlope = 2.5
}

// Setup reads the configuration file and sets defaults for anything it
// does not provide. Safe to call more than once; only the first call has
// effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	initialized = true
}

// String prints the current configuration using reflection, in the same
// spirit as a dump of active settings for a log line at startup.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	v := reflect.ValueOf(&c.Search).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(&b, "%-24s %-8s = %v\n", t.Field(i).Name, f.Type(), f.Interface())
	}
	return b.String()
}

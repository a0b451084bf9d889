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

// Package perftsuite runs perft-reference test files against the move
// generator: each line names a FEN and the expected leaf-node count at
// one or more fixed depths, in the style of a chess-programming EPD
// perft suite. For the purpose of this engine only the "Dn" opcodes are
// implemented -- there is no best-move or mate annotation support, since
// the core engine has no notion of EPD bm/am/dm opcodes, only perft
// counts.
package perftsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rkane/bitchess/internal/attacks"
	myLogging "github.com/rkane/bitchess/internal/logging"
	"github.com/rkane/bitchess/internal/position"
)

var out = message.NewPrinter(language.English)
var log = myLogging.GetLog("perftsuite")

// depthRegex pulls every "Dn count" pair out of the part of a line that
// follows the FEN's six fields, e.g. "D1 20 D2 400 D3 8902".
var depthRegex = regexp.MustCompile(`D(\d+)\s+(\d+)`)

// Case is one perft reference line: a position and the leaf counts it is
// expected to produce at each depth present in the line.
type Case struct {
	FEN    string
	Depths map[int]uint64
	Line   string
}

// CaseResult is the outcome of running one Case to one of its depths.
type CaseResult struct {
	Case     *Case
	Depth    int
	Expected uint64
	Actual   uint64
	Elapsed  time.Duration
}

// Passed reports whether the actual count matched the expected one.
func (r CaseResult) Passed() bool {
	return r.Actual == r.Expected
}

// Result collects every CaseResult from a RunFile call.
type Result struct {
	Cases   []CaseResult
	Elapsed time.Duration
}

// Passed counts the results that matched their expected count.
func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed() {
			n++
		}
	}
	return n
}

// Failed counts the results that did not match.
func (r *Result) Failed() int {
	return len(r.Cases) - r.Passed()
}

// Summary formats a report table in the teacher's test-suite style.
func (r *Result) Summary() string {
	var b strings.Builder
	out.Fprintf(&b, "Perft Suite Results\n")
	out.Fprintf(&b, "====================================================================\n")
	out.Fprintf(&b, "%-6s | %-10s | %-12s | %-12s | %s\n", "Depth", "Result", "Expected", "Actual", "FEN")
	out.Fprintf(&b, "====================================================================\n")
	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed() {
			status = "FAIL"
		}
		out.Fprintf(&b, "%-6d | %-10s | %-12d | %-12d | %s\n", c.Depth, status, c.Expected, c.Actual, c.Case.FEN)
	}
	out.Fprintf(&b, "====================================================================\n")
	out.Fprintf(&b, "Passed: %d   Failed: %d   Time: %s\n", r.Passed(), r.Failed(), r.Elapsed)
	return b.String()
}

// RunFile reads a perft EPD-style file and returns the node counts
// measured against the counts each line declares.
func RunFile(tables *attacks.Tables, path string) (*Result, error) {
	cases, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{}
	for _, c := range cases {
		for depth, expected := range c.Depths {
			pos, err := position.FromFEN(tables, c.FEN)
			if err != nil {
				log.Warningf("skipping invalid FEN %q: %s", c.FEN, err)
				continue
			}
			caseStart := time.Now()
			actual := Perft(pos, depth)
			result.Cases = append(result.Cases, CaseResult{
				Case:     c,
				Depth:    depth,
				Expected: expected,
				Actual:   actual,
				Elapsed:  time.Since(caseStart),
			})
		}
	}
	result.Elapsed = time.Since(start)
	return result, nil
}

// Perft counts the leaf nodes reachable from pos by playing out every
// legal move sequence to the given depth. pos's board is not changed;
// its move and threat caches are refreshed by SetMoves.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pos.SetMoves()
	moves := pos.GenMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Clone()
		child.DoMove(m)
		child.Board.Invert()
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// parseFile reads every non-blank, non-comment line of path into a Case.
func parseFile(path string) ([]*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening perft suite file: %w", err)
	}
	defer f.Close()

	var cases []*Case
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c := parseLine(line)
		if c != nil {
			cases = append(cases, c)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading perft suite file: %w", err)
	}
	return cases, nil
}

// parseLine splits one "fen ; D1 n1 ; D2 n2 ; D3 n3" line into a Case.
// The FEN is taken as everything before the first semicolon.
func parseLine(line string) *Case {
	parts := strings.SplitN(line, ";", 2)
	fen := strings.TrimSpace(parts[0])
	if fen == "" {
		return nil
	}

	depths := make(map[int]uint64)
	if len(parts) == 2 {
		for _, m := range depthRegex.FindAllStringSubmatch(parts[1], -1) {
			d, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			n, err := strconv.ParseUint(m[2], 10, 64)
			if err != nil {
				continue
			}
			depths[d] = n
		}
	}
	if len(depths) == 0 {
		log.Warningf("no depth/count pairs found in perft line: %s", line)
		return nil
	}

	return &Case{FEN: fen, Depths: depths, Line: line}
}

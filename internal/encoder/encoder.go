// Package encoder serializes a path into the movement command string.
//
// Wire format:
//
//	Command        := "!" RunToken* Trailer Nonce
//	RunToken       := FullChunk* RemainderToken
//	FullChunk      := Direction "9"
//	RemainderToken := Direction Digit   ; n mod 9
//	Trailer        := "a9a9a9a9a9"
//	Nonce          := decimal uint32
//	Direction      := "l" | "r" | "u" | "d"
//
// A run whose length is an exact multiple of 9 still ends with a "0"
// remainder token (e.g. nine steps right is "r9r0"). Consumers already
// tolerate it, so it must not be dropped.
package encoder

import (
	"errors"
	"strconv"

	"github.com/danieljhkim/gridcmd/internal/grid"
	"github.com/danieljhkim/gridcmd/internal/nonce"
)

const (
	// Sentinel opens every command.
	Sentinel = '!'

	// Trailer follows the run tokens.
	Trailer = "a9a9a9a9a9"

	// ChunkSize is the largest count a single token carries.
	ChunkSize = 9
)

// ErrEmptyPath indicates an attempt to encode a path without coordinates.
var ErrEmptyPath = errors.New("cannot encode empty path")

// Run is a maximal sequence of steps in one direction.
type Run struct {
	Dir   Direction `json:"dir"`
	Count int       `json:"count"`
}

// Runs splits path into direction runs in path order.
// A single-coordinate path has no runs.
func Runs(path []grid.Coord) ([]Run, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	var runs []Run
	for i := 1; i < len(path); i++ {
		dir, err := DirectionBetween(path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		if n := len(runs); n > 0 && runs[n-1].Dir == dir {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{Dir: dir, Count: 1})
	}
	return runs, nil
}

// AppendRun appends the tokens for r to dst. Runs with a non-positive count
// append nothing.
func AppendRun(dst []byte, r Run) []byte {
	if r.Count <= 0 {
		return dst
	}
	d := r.Dir.Byte()
	for i := 0; i < r.Count/ChunkSize; i++ {
		dst = append(dst, d, '0'+ChunkSize)
	}
	return append(dst, d, byte('0'+r.Count%ChunkSize))
}

// EncodeRuns renders runs with the sentinel, trailer and the given nonce.
func EncodeRuns(runs []Run, n uint32) string {
	buf := make([]byte, 0, 1+4*len(runs)+len(Trailer)+10)
	buf = append(buf, Sentinel)
	for _, r := range runs {
		buf = AppendRun(buf, r)
	}
	buf = append(buf, Trailer...)
	buf = strconv.AppendUint(buf, uint64(n), 10)
	return string(buf)
}

// Encode converts path into a command string, drawing one nonce from src.
// No nonce is drawn when the path is rejected.
func Encode(path []grid.Coord, src nonce.Source) (string, error) {
	runs, err := Runs(path)
	if err != nil {
		return "", err
	}
	return EncodeRuns(runs, src.Uint32()), nil
}

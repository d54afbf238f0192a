// Package stream delivers an ordered script of text fragments to a sink,
// pacing each transmission by the fragment's delay.
package stream

import (
	"iter"
	"sync/atomic"
	"time"
)

// Fragment is one discrete payload scheduled for transmission, followed by
// a pause of Delay before the next one.
type Fragment struct {
	Data  string
	Delay time.Duration
}

// Script is a lazy, finite sequence of fragments in authored order.
type Script = iter.Seq[Fragment]

// Fragments returns a Script over the given literal fragments.
func Fragments(fragments ...Fragment) Script {
	return func(yield func(Fragment) bool) {
		for _, f := range fragments {
			if !yield(f) {
				return
			}
		}
	}
}

// Once wraps script so that only the first range over it yields fragments.
// Later ranges see an empty sequence.
func Once(script Script) Script {
	var used atomic.Bool
	return func(yield func(Fragment) bool) {
		if used.Swap(true) {
			return
		}
		script(yield)
	}
}

// Collect drains script into a slice.
func Collect(script Script) []Fragment {
	var out []Fragment
	for f := range script {
		out = append(out, f)
	}
	return out
}

// Stats describes a script without sending it.
type Stats struct {
	Fragments  int
	Bytes      int
	TotalDelay time.Duration
}

// Measure consumes script and totals its fragments, payload bytes and delays.
func Measure(script Script) Stats {
	var s Stats
	for f := range script {
		s.Fragments++
		s.Bytes += len(f.Data)
		s.TotalDelay += f.Delay
	}
	return s
}

// Package sink delivers encoded commands to their consumer.
//
// The consumer of a command string is external to gridcmd: historically the
// clipboard of another program. A Sink hides where the string goes so the
// planning engine only ever produces it.
package sink

import (
	"fmt"
	"io"
)

// Sink receives command strings.
type Sink interface {
	// Deliver hands one command to the consumer.
	Deliver(cmd string) error
}

// WriterSink writes each command on its own line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Deliver writes cmd followed by a newline.
func (s *WriterSink) Deliver(cmd string) error {
	if _, err := fmt.Fprintln(s.w, cmd); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	return nil
}

// Discard drops every command.
type Discard struct{}

// Deliver does nothing.
func (Discard) Deliver(string) error { return nil }

// multi fans a command out to several sinks.
type multi []Sink

// Multi returns a Sink that delivers to each of sinks in order and stops at
// the first failure.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Deliver(cmd string) error {
	for _, s := range m {
		if err := s.Deliver(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Recorder keeps every delivered command in memory.
type Recorder struct {
	commands []string
	err      error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes subsequent deliveries return err without recording.
func (r *Recorder) FailWith(err error) {
	r.err = err
}

// Deliver records cmd.
func (r *Recorder) Deliver(cmd string) error {
	if r.err != nil {
		return r.err
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []string {
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}

// Last returns the most recent command, or "" if none.
func (r *Recorder) Last() string {
	if len(r.commands) == 0 {
		return ""
	}
	return r.commands[len(r.commands)-1]
}

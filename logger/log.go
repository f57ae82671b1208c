// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// number of times the entry was logged in immediate succession
	Repeated int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(e.Tag)
	s.WriteString(": ")
	s.WriteString(e.Detail)
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. Most of the time the central
// logger, accessed through the package level functions, is what is wanted.
type Logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry

	// entries are echoed to this writer as they are added
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
// The oldest entries are discarded once maxEntries has been reached.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the log if the permission allows it.
func (l *Logger) Log(perm Permission, tag, detail string) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	// newlines would break the one entry per line output
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	l.crit.Lock()
	defer l.crit.Unlock()

	now := time.Now()

	var e *Entry
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		e = &l.entries[n-1]
		e.Repeated++
		e.Timestamp = now
	} else {
		l.entries = append(l.entries, Entry{Timestamp: now, Tag: tag, Detail: detail})
		if len(l.entries) > l.maxEntries {
			l.entries = l.entries[len(l.entries)-l.maxEntries:]
		}
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Logf adds a formatted entry to the log if the permission allows it.
func (l *Logger) Logf(perm Permission, tag, detail string, args ...any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.Log(perm, tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number > len(l.entries) {
		number = len(l.entries)
	}
	if number <= 0 {
		return
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new log entries to io.Writer as they are made. If
// writeRecent is true then the existing entries are written to the writer
// immediately. A nil writer turns echoing off.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	if output != nil && writeRecent {
		for _, e := range l.entries {
			io.WriteString(output, e.String())
		}
	}
}

// Entries returns a copy of the current log entries.
func (l *Logger) Entries() []Entry {
	l.crit.Lock()
	defer l.crit.Unlock()
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}

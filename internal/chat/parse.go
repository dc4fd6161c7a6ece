package chat

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxLineSize = 1024 * 1024 // 1MB

// lineRe matches one export line anchored at the start:
// one/two digit day and month, four digit year, two digit hour and
// minute, then " - Sender: text". The sender capture is non-greedy so
// the first ": " terminates it; the text may itself contain colons and
// may be empty.
var lineRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4}), (\d{2}:\d{2}) - (.+?): (.*)$`)

// ParseLine parses a single export line. The second return value
// reports whether the line matched the grammar; unmatched lines are
// not errors.
func ParseLine(line string) (Message, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Message{}, false
	}
	return Message{
		Date:   m[1],
		Clock:  m[2],
		Sender: cleanSender(m[3]),
		Text:   m[4],
	}, true
}

// cleanSender strips the trailing parenthetical annotation some exports
// append to contact names, e.g. "Bob (+1 555 0100)" -> "Bob".
func cleanSender(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// Ingest reads an export line by line and returns the messages whose
// lines matched the grammar, in input order. Invalid UTF-8 aborts the
// call with a *DecodeError; an input with zero matching lines yields an
// empty slice, not an error.
func Ingest(r io.Reader) ([]Message, IngestStats, error) {
	var stats IngestStats
	var msgs []Message

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.Lines++
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, stats, &DecodeError{Line: stats.Lines}
		}
		line := strings.TrimRight(string(raw), "\r\n")
		if msg, ok := ParseLine(line); ok {
			msgs = append(msgs, msg)
			stats.Matched++
		} else {
			stats.Dropped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return msgs, stats, nil
}

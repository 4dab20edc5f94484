// Package proto turns the raw command byte stream into token lines. The wire
// format is ASCII text, one command per line, terminated by \n or \r, tokens
// separated by runs of whitespace with no escaping. Double quotes may group a
// multi-word payload; every line that splits on whitespace is still accepted
// as-is.
package proto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// MaxLine caps the accumulation buffer. The device had no cap; here an
// overlong line is discarded up to its terminator and reported as malformed.
const MaxLine = 256

// ErrParse marks malformed input: overlong lines.
var ErrParse = errors.New("malformed input")

// Result is one completed line, either tokenized or rejected.
type Result struct {
	Tokens []string
	Err    error
}

// Parser accumulates bytes into lines. It keeps no other state, so a single
// instance serves the whole input stream.
type Parser struct {
	buf     []byte
	discard bool
}

func NewParser() *Parser {
	return &Parser{buf: make([]byte, 0, 64)}
}

// Feed consumes a chunk of bytes and returns a Result per completed line.
// Empty and whitespace-only lines produce nothing.
func (p *Parser) Feed(data []byte) []Result {
	var out []Result
	for _, b := range data {
		if b == '\n' || b == '\r' {
			if r, ok := p.finishLine(); ok {
				out = append(out, r)
			}
			continue
		}
		if p.discard {
			continue
		}
		if len(p.buf) >= MaxLine {
			p.discard = true
			continue
		}
		p.buf = append(p.buf, b)
	}
	return out
}

func (p *Parser) finishLine() (Result, bool) {
	if p.discard {
		p.discard = false
		p.buf = p.buf[:0]
		return Result{Err: fmt.Errorf("%w: line longer than %d bytes", ErrParse, MaxLine)}, true
	}
	line := strings.TrimSpace(string(p.buf))
	p.buf = p.buf[:0]
	if line == "" {
		return Result{}, false
	}
	return Result{Tokens: tokenize(line)}, true
}

// tokenize splits a line into tokens. Whitespace runs are the separator;
// the grouping pass runs only on lines where shlex cannot misread the
// payload, since its other shell rules (# comments, backslash escapes,
// single quotes) are not part of the wire format. Apostrophes, hashes and
// unbalanced quotes stay literal.
func tokenize(line string) []string {
	if strings.ContainsRune(line, '"') && !strings.ContainsAny(line, `#'\`) {
		if tokens, err := shlex.Split(line); err == nil {
			return tokens
		}
	}
	return strings.Fields(line)
}

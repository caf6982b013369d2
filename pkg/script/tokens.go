package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

// tokens is a whitespace tokenizer with one token of lookahead. Typed reads
// leave a token that does not parse in place, so it is read again as a
// command.
type tokens struct {
	sc     *bufio.Scanner
	peeked string
	has    bool
}

func (t *tokens) peek() (string, bool) {
	if !t.has {
		if !t.sc.Scan() {
			return "", false
		}
		t.peeked, t.has = t.sc.Text(), true
	}
	return t.peeked, true
}

func (t *tokens) next() (string, bool) {
	tok, ok := t.peek()
	t.has = false
	return tok, ok
}

func (t *tokens) nextInt() (int, bool) {
	tok, ok := t.peek()
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	t.has = false
	return v, true
}

func (t *tokens) nextBool() (bool, bool) {
	tok, ok := t.peek()
	if !ok {
		return false, false
	}
	switch {
	case strings.EqualFold(tok, "true"):
		t.has = false
		return true, true
	case strings.EqualFold(tok, "false"):
		t.has = false
		return false, true
	}
	return false, false
}

func (t *tokens) err() error {
	return t.sc.Err()
}

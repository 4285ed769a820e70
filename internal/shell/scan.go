// File: scan.go
// Title: Command Line Scanner
// Description: Tokenizes interactive input of the form
//              "NAME key=value key=value ..." into a command name and a
//              typed named-argument list.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhitkovns/engine-wrapper/command"
	"github.com/zhitkovns/engine-wrapper/value"
)

// ScanLine splits an input line into a command name and its named
// arguments. The first token is the command name; every further token
// must be key=value. Values are typed by literal form: integer, then
// float, then bool, otherwise string. Double quotes group spaces and
// force string typing.
func ScanLine(line string) (string, []command.Arg, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", nil, err
	}
	if len(tokens) == 0 {
		return "", nil, fmt.Errorf("empty input")
	}

	name := tokens[0].text
	if tokens[0].quoted {
		return "", nil, fmt.Errorf("command name cannot be quoted")
	}

	var args []command.Arg
	for _, tok := range tokens[1:] {
		eq := strings.IndexByte(tok.text, '=')
		if tok.quoted || eq < 0 {
			return "", nil, fmt.Errorf("expected key=value, got %q", tok.text)
		}
		key := tok.text[:eq]
		if key == "" {
			return "", nil, fmt.Errorf("argument name missing in %q", tok.text)
		}
		raw := tok.text[eq+1:]
		args = append(args, command.Named(key, typeLiteral(raw, tok.quotedValue)))
	}
	return name, args, nil
}

type token struct {
	text        string
	quoted      bool // entire token was quoted
	quotedValue bool // the value part after '=' was quoted
}

func tokenize(line string) ([]token, error) {
	var tokens []token
	var cur strings.Builder
	inQuote := false
	sawQuote := false
	valueQuoted := false
	afterEq := false
	flush := func() {
		if cur.Len() == 0 && !sawQuote {
			return
		}
		tokens = append(tokens, token{
			text:        cur.String(),
			quoted:      sawQuote && !afterEq,
			quotedValue: sawQuote && afterEq && valueQuoted,
		})
		cur.Reset()
		sawQuote = false
		valueQuoted = false
		afterEq = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			sawQuote = true
			if afterEq {
				valueQuoted = true
			}
		case r == ' ' || r == '\t':
			if inQuote {
				cur.WriteRune(r)
			} else {
				flush()
			}
		case r == '=' && !inQuote:
			afterEq = true
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush()
	return tokens, nil
}

// typeLiteral maps a raw literal to an erased value. Quoted values are
// always strings.
func typeLiteral(raw string, quoted bool) value.Value {
	if quoted {
		return value.String(raw)
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return value.Int(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.Float(f)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return value.Bool(b)
	}
	return value.String(raw)
}

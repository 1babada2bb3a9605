package emulator

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	starsyntax "go.starlark.net/syntax"

	"github.com/ezrec/x86sim/internal"
)

var (
	tokenRegexp      = regexp.MustCompile(`\s+|,\s*`)
	expressionRegexp = regexp.MustCompile(`\$\([^\$]*\)`)
)

// operandKeywords fold with the following token into a single operand.
var operandKeywords = map[string]bool{
	"OFFSET":   true,
	"LENGTHOF": true,
	"SIZEOF":   true,
}

// splitLines splits source text on '\n' only.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// stripComment removes a ';' comment and surrounding space.
func stripComment(line string) string {
	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}
	return strings.TrimSpace(line)
}

// labelOf returns the label name of a label line.
func labelOf(line string) (label string, ok bool) {
	if !strings.HasSuffix(line, ":") {
		return
	}
	return strings.TrimSpace(line[:len(line)-1]), true
}

// tokenize splits on runs of whitespace, or a comma and optional whitespace.
func tokenize(line string) (words []string) {
	return slices.DeleteFunc(tokenRegexp.Split(line, -1), func(a string) bool { return len(a) == 0 })
}

// foldKeywords joins 'OFFSET NAME' style operand pairs into one word.
func foldKeywords(words []string) (folded []string) {
	for n := 0; n < len(words); n++ {
		word := words[n]
		if operandKeywords[strings.ToUpper(word)] && n+1 < len(words) {
			word = word + " " + words[n+1]
			n++
		}
		folded = append(folded, word)
	}
	return
}

// parseNumber parses a decimal, 0x-prefixed hex, h-suffixed hex or
// b-suffixed binary integer.
func parseNumber(word string) (value int64, err error) {
	text := strings.ToUpper(word)

	negative := false
	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(text, "0X"):
		text = text[2:]
		base = 16
	case len(text) > 1 && strings.HasSuffix(text, "H"):
		text = text[:len(text)-1]
		base = 16
	case len(text) > 1 && strings.HasSuffix(text, "B") && strings.Trim(text[:len(text)-1], "01") == "":
		text = text[:len(text)-1]
		base = 2
	}

	u64, perr := strconv.ParseUint(text, base, 63)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int64(u64)
	if negative {
		value = -value
	}

	return
}

// parseImmediate parses a number that fits in 32 bits, signed or unsigned.
func parseImmediate(word string) (value int32, err error) {
	v64, err := parseNumber(word)
	if err != nil {
		return
	}

	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = int32(v64)
	return
}

// evaluate does a $(...) evaluation. Numeric equates and variable
// addresses are visible by name.
func (emu *Emulator) evaluate(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := starsyntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range internal.IterSeq2Concat(maps.All(emu.equate), emu.Data.Addresses()) {
		v64, perr := parseNumber(str)
		if perr != nil {
			// Non-numeric equates are textual substitutions.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expand replaces every $(...) in line with its decimal value.
func (emu *Emulator) expand(line string) (expanded string, err error) {
	expanded = expressionRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := emu.evaluate(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		err = syntax(err)
	}
	return
}

// substitute replaces equate names among the operand words.
func (emu *Emulator) substitute(words []string) {
	for n, word := range words {
		if n == 0 {
			continue
		}
		equate, ok := emu.equate[strings.ToUpper(word)]
		if ok {
			words[n] = equate
		}
	}
}

// LabelPass maps each label name to the index of its own label line.
func LabelPass(lines []string) (label map[string]int, err error) {
	label = make(map[string]int)

	for n, line := range lines {
		name, ok := labelOf(stripComment(line))
		if !ok {
			continue
		}
		if _, dup := label[name]; dup {
			err = &ErrRuntime{Index: n, Line: line, Err: ErrLabelDuplicate}
			return
		}
		label[name] = n
	}

	return
}

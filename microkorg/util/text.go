package util

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

func Hex(stream []uint8) string {
	if len(stream) == 0 {
		return "[]"
	}
	s := ""
	for _, b := range stream {
		s += fmt.Sprintf(" %02X", b)
	}
	return "[" + s[1:] + "]"
}

// HexDump formats stream as rows of 16 bytes prefixed with their offset.
func HexDump(stream []uint8) string {
	rows := []string{}
	for off := 0; off < len(stream); off += 16 {
		end := off + 16
		if len(stream) < end {
			end = len(stream)
		}
		rows = append(rows, fmt.Sprintf("%04X: % X", off, stream[off:end]))
	}
	return strings.Join(rows, "\n")
}

var hexNoiseRe = regexp.MustCompile(`(?i)0x|[\s,;:\[\]]`)

// ParseHex accepts "F0 42 30", "f04230", "0xF0,0x42" and similar spellings.
func ParseHex(s string) ([]byte, error) {
	clean := hexNoiseRe.ReplaceAllString(s, "")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}

// ASCIIName folds s to printable ASCII: accents are stripped, anything else
// outside 0x20..0x7E becomes '?'. The result is cut to max bytes.
func ASCIIName(s string, max int) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	b := []byte{}
	for _, r := range folded {
		if len(b) == max {
			break
		}
		if r < 0x20 || 0x7E < r {
			r = '?'
		}
		b = append(b, byte(r))
	}
	return string(b)
}

// PadName returns exactly n bytes of name, space padded.
func PadName(name string, n int) []byte {
	b := bytes.Repeat([]byte{' '}, n)
	copy(b, ASCIIName(name, n))
	return b
}

// TrimName drops trailing spaces and NULs from a fixed-width name field.
// Bytes outside 0x20..0x7E become '?'.
func TrimName(b []byte) string {
	s := []byte(strings.TrimRight(string(b), " \x00"))
	for i, c := range s {
		if c < 0x20 || 0x7E < c {
			s[i] = '?'
		}
	}
	return string(s)
}

package seer2arff

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeReader wraps r so that records in the named single-byte
// encoding are transcoded to UTF-8 before scanning.  SEER extracts
// are nominally ASCII, but files that passed through registry
// tooling occasionally arrive in a Windows code page.  An empty name
// and the ASCII/UTF-8 names return r unchanged.
func DecodeReader(r io.Reader, name string) (io.Reader, error) {

	var cm *charmap.Charmap

	switch strings.ToLower(name) {
	case "", "ascii", "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1":
		cm = charmap.ISO8859_1
	case "windows-1250":
		cm = charmap.Windows1250
	case "windows-1252":
		cm = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unknown input encoding %q", name)
	}

	return transform.NewReader(r, cm.NewDecoder()), nil
}

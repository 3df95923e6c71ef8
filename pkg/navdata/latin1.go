// pkg/navdata/latin1.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// latin1Reader decodes an io.Reader containing ISO-8859-1 (Latin-1) text,
// the encoding X-Plane's navdata files are distributed in, into UTF-8.
// Every Latin-1 byte value is numerically identical to its Unicode code
// point, so the conversion is a straight byte-to-rune widening with no
// table lookups needed.
type latin1Reader struct {
	r   *bufio.Reader
	buf [utf8.UTFMax]byte
}

func newLatin1Reader(r io.Reader) io.Reader {
	return &latin1Reader{r: bufio.NewReader(r)}
}

func (t *latin1Reader) Read(p []byte) (int, error) {
	n := 0
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}

		wn := utf8.EncodeRune(t.buf[:], rune(b))
		if n+wn > len(p) {
			if uerr := t.r.UnreadByte(); uerr != nil {
				return n, uerr
			}
			return n, nil
		}
		copy(p[n:], t.buf[:wn])
		n += wn

		if n == len(p) {
			return n, nil
		}
	}
}

package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader around r; if r already implements rune reading,
// it is simply returned. Otherwise a bufio.Reader provides it.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	return runeReader{r, bufio.NewReader(r)}
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

// ByteReader is an io.Reader that also supports reading single bytes.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// NewByteReader returns a ByteReader around r; if r already implements byte
// reading, it is simply returned. Otherwise a bufio.Reader provides it.
func NewByteReader(r io.Reader) ByteReader {
	if impl, ok := r.(ByteReader); ok {
		return impl
	}
	return byteReader{r, bufio.NewReader(r)}
}

type byteReader struct {
	io.Reader
	io.ByteReader
}

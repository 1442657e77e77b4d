package wsframe

import (
	"encoding/binary"
	"io"
)

// readByte reads a single byte from r, wrapping any failure (including
// end-of-stream) as an I/O CodecError.
func readByte(r io.Reader, buf *[1]byte) (byte, error) {
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ioErr("read frame header", err)
	}
	return buf[0], nil
}

func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return ioErr(what, err)
	}
	return nil
}

func readUint16BE(r io.Reader, what string) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func readUint64BE(r io.Reader, what string) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func writeByte(w io.Writer, b byte) error {
	buf := [1]byte{b}
	if _, err := w.Write(buf[:]); err != nil {
		return ioErr("write frame header", err)
	}
	return nil
}

func writeUint16BE(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return ioErr("write extended length", err)
	}
	return nil
}

func writeUint64BE(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return ioErr("write extended length", err)
	}
	return nil
}

// discard reads and drops exactly n bytes from r.
func discard(r io.Reader, n uint64) error {
	if n == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r, int64(n)); err != nil {
		return ioErr("skip frame payload", err)
	}
	return nil
}

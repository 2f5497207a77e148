package hash

import (
	"bytes"
	"encoding/binary"
	"io"
)

// WriterToWithDomain is a value that serializes itself under a domain tag.
type WriterToWithDomain interface {
	io.WriterTo

	Domain() string
}

// writeWithDomain writes out a piece of data, using its domain.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	var data bytes.Buffer
	if _, err := object.WriteTo(&data); err != nil {
		return err
	}
	// <len(domain)><domain><len(data)><data>, lengths as big-endian uint64
	for _, chunk := range [][]byte{[]byte(object.Domain()), data.Bytes()} {
		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(chunk)))
		if _, err := w.Write(length[:]); err != nil {
			return err
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

// BytesWithDomain tags raw bytes with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}

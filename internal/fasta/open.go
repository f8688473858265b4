package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// mappedFile is a read-only memory map of a whole file.
type mappedFile struct {
	*bytes.Reader
	m  mmap.MMap
	fh *os.File
}

func (f *mappedFile) Close() error {
	err := f.m.Unmap()
	if cerr := f.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open returns a reader for path: "-" is stdin, gzip is detected by magic
// number or ".gz" suffix, and other regular files are memory-mapped. Pipes
// and devices (FIFOs, /dev/fd/N) are read as streams.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	if !st.Mode().IsRegular() {
		return openStream(path, fh)
	}

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if isGzip(path, sig[:n]) {
		return openGzip(fh, fh)
	}
	// Empty files cannot be mapped.
	if st.Size() == 0 {
		return fh, nil
	}
	m, err := mmap.Map(fh, mmap.RDONLY, 0)
	if err != nil {
		return fh, nil
	}
	return &mappedFile{Reader: bytes.NewReader(m), m: m, fh: fh}, nil
}

// openStream sniffs a non-seekable file through a buffered reader.
func openStream(path string, fh *os.File) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(fh, 64<<10)
	sig, _ := br.Peek(2)
	if isGzip(path, sig) {
		return openGzip(br, fh)
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

func openGzip(r io.Reader, fh *os.File) (io.ReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
}

func isGzip(path string, sig []byte) bool {
	return (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz")
}

package cloudwriter

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"
)

// Writer buffers object content and uploads it on Close.
type Writer interface {
	Write(data []byte) (int, error)
	Close() error
}

type Factory interface {
	NewWriter(bucket, objectPath string) (Writer, error)
}

// ParquetFile adapts a cloud Writer to the parquet source interface. Cloud
// objects are write-once, so Open/Create return the instance itself and
// reads and end-relative seeks are unsupported.
type ParquetFile struct {
	w      Writer
	offset int64
}

func NewParquetFile(w Writer) *ParquetFile {
	return &ParquetFile{w: w}
}

func (p *ParquetFile) Open(name string) (source.ParquetFile, error) {
	return p, nil
}

func (p *ParquetFile) Create(name string) (source.ParquetFile, error) {
	return p, nil
}

func (p *ParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		p.offset = offset
	case io.SeekCurrent:
		p.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return p.offset, nil
}

func (p *ParquetFile) Read(b []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (p *ParquetFile) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

func (p *ParquetFile) Close() error {
	return p.w.Close()
}

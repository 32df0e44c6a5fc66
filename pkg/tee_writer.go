package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes to all given writers, unlike io.MultiWriter it keeps
// going when one of them fails and reports the combined error at the end.
type TeeWriter struct {
	writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{writers: writers}
}

func (tw *TeeWriter) Write(p []byte) (n int, err error) {
	for _, w := range tw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}

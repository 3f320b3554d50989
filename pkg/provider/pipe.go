package provider

import (
	"io"
	"sync"
)

// Pipe streams the output of an encoder into a request body without
// buffering the whole document. The write callback runs in its own
// goroutine; its error (if any) is returned by Read once the buffered
// output has been consumed.
type Pipe struct {
	r    *io.PipeReader
	once sync.Once
	err  error
}

// NewPipe starts encoding with the write callback and returns a reader
// over its output. The caller owns the pipe and must close it.
func NewPipe(write func(io.Writer) error) *Pipe {

	pr, pw := io.Pipe()

	p := &Pipe{r: pr}
	go func() {
		// CloseWithError(nil) closes with io.EOF
		_ = pw.CloseWithError(write(pw))
	}()

	return p
}

// Read is 'io.Reader' interface implementation
func (p *Pipe) Read(out []byte) (int, error) {
	return p.r.Read(out)
}

// Close releases the pipe. Closing before the encoder finishes aborts it.
// Safe to call more than once.
func (p *Pipe) Close() error {
	p.once.Do(func() {
		p.err = p.r.Close()
	})
	return p.err
}

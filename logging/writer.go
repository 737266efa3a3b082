package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// lookupEncoding resolves a WHATWG encoding label. Empty means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	return htmlindex.Get(name)
}

// consoleWriter is the console WriteSyncer. Sync is a no-op: terminals and pipes
// reject fsync, and console output is never buffered here.
type consoleWriter struct {
	io.Writer
}

func newConsoleWriter(w io.Writer) zapcore.WriteSyncer {
	return zapcore.Lock(consoleWriter{Writer: w})
}

// Sync implements zapcore.WriteSyncer.
func (consoleWriter) Sync() error { return nil }

// fileWriter implements zapcore.WriteSyncer over an open log file, transcoding UTF-8
// records into the configured encoding on the way out. Writes and syncs after Close
// are dropped, so children taken before Factory.Close stay quiet.
type fileWriter struct {
	mu     sync.Mutex
	file   *os.File
	out    io.Writer
	enc    *transform.Writer // nil for UTF-8
	closed bool
}

// openFileWriter opens path with the given mode and wraps it for encodingName.
func openFileWriter(path string, mode Mode, encodingName string) (*fileWriter, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, mode.flags(), 0644)
	if err != nil {
		return nil, err
	}

	w := &fileWriter{file: f, out: f}
	if canonical, _ := htmlindex.Name(enc); canonical != "utf-8" {
		w.enc = transform.NewWriter(f, enc.NewEncoder())
		w.out = w.enc
	}
	return w, nil
}

// Write implements io.Writer.
func (w *fileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return len(p), nil
	}
	return w.out.Write(p)
}

// Sync implements zapcore.WriteSyncer.
func (w *fileWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	return w.file.Sync()
}

// Close flushes the encoder, syncs and closes the file.
func (w *fileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	var err error
	if w.enc != nil {
		err = multierr.Append(err, w.enc.Close())
	}
	err = multierr.Append(err, w.file.Sync())
	return multierr.Append(err, w.file.Close())
}

// Ensure the writers implement zapcore.WriteSyncer, and fileWriter io.Closer.
var (
	_ zapcore.WriteSyncer = consoleWriter{}
	_ zapcore.WriteSyncer = (*fileWriter)(nil)
	_ io.Closer           = (*fileWriter)(nil)
)

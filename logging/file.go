package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FileOptions configures a rotating log file.
type FileOptions struct {
	Dir       string
	Name      string
	MaxSizeMB int
	MaxFiles  int
}

// FileWriter appends log lines to a file, rotating it by size or age and gzipping rotated copies.
type FileWriter struct {
	mu           sync.Mutex
	opts         FileOptions
	maxSize      int64
	current      *os.File
	currentSize  int64
	lastRotation time.Time
	now          func() time.Time
}

// NewFileWriter opens (or creates) the log file described by opts.
func NewFileWriter(opts FileOptions) (*FileWriter, error) {
	if opts.Name == "" {
		opts.Name = "site.log"
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = 5
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	fw := &FileWriter{
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * 1024 * 1024,
		now:     time.Now,
	}
	fw.lastRotation = fw.now()
	if err := fw.open(); err != nil {
		return nil, err
	}
	return fw, nil
}

// Path is the active log file.
func (fw *FileWriter) Path() string {
	return filepath.Join(fw.opts.Dir, fw.opts.Name)
}

func (fw *FileWriter) open() error {
	f, err := os.OpenFile(fw.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	fw.current = f
	fw.currentSize = info.Size()
	return nil
}

func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.shouldRotate(int64(len(p))) {
		if err := fw.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := fw.current.Write(p)
	fw.currentSize += int64(n)
	return n, err
}

func (fw *FileWriter) shouldRotate(writeSize int64) bool {
	if fw.currentSize > 0 && fw.currentSize+writeSize > fw.maxSize {
		return true
	}
	return fw.now().Sub(fw.lastRotation) > 24*time.Hour
}

func (fw *FileWriter) rotate() error {
	if fw.current != nil {
		if err := fw.current.Close(); err != nil {
			return fmt.Errorf("close current file: %w", err)
		}
	}

	rotated := fmt.Sprintf("%s.%s", fw.Path(), fw.now().Format("20060102-150405.000"))
	if err := os.Rename(fw.Path(), rotated); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rename log file: %w", err)
	}
	if err := compressFile(rotated); err == nil {
		fw.prune()
	}

	if err := fw.open(); err != nil {
		return err
	}
	fw.lastRotation = fw.now()
	return nil
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		gz.Close()
		out.Close()
		os.Remove(path + ".gz")
		return err
	}
	if err := gz.Close(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

// prune keeps the newest MaxFiles rotated archives.
func (fw *FileWriter) prune() {
	matches, err := filepath.Glob(fw.Path() + ".*.gz")
	if err != nil || len(matches) <= fw.opts.MaxFiles {
		return
	}
	// Rotation suffixes are timestamps, so lexical order is age order.
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-fw.opts.MaxFiles] {
		os.Remove(path)
	}
}

// Close closes the active file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.current != nil {
		return fw.current.Close()
	}
	return nil
}

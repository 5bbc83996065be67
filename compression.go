package colframe

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/nao1215/colframe/domain/model"
	"github.com/ulikunitz/xz"
)

// CompressionHandler defines the interface for handling file compression/decompression
type CompressionHandler interface {
	// CreateReader wraps an io.Reader with a decompression reader if needed
	CreateReader(reader io.Reader) (io.Reader, func() error, error)
	// CreateWriter wraps an io.Writer with a compression writer if needed
	CreateWriter(writer io.Writer) (io.Writer, func() error, error)
	// Extension returns the file extension for this compression type (e.g., ".gz")
	Extension() string
}

// compressionHandlerImpl implements the CompressionHandler interface
type compressionHandlerImpl struct {
	compressionType CompressionType
}

// NewCompressionHandler creates a new compression handler for the given compression type
func NewCompressionHandler(compressionType CompressionType) CompressionHandler {
	return &compressionHandlerImpl{
		compressionType: compressionType,
	}
}

// CreateReader creates a decompression reader based on the compression type
func (h *compressionHandlerImpl) CreateReader(reader io.Reader) (io.Reader, func() error, error) {
	switch h.compressionType {
	case model.CompressionNone:
		return reader, func() error { return nil }, nil

	case model.CompressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create gzip reader")
		}
		return gzReader, gzReader.Close, nil

	case model.CompressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case model.CompressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create xz reader")
		}
		return xzReader, func() error { return nil }, nil

	case model.CompressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create zstd reader")
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, errors.Newf("unsupported compression type for reading: %v", h.compressionType)
	}
}

// CreateWriter creates a compression writer based on the compression type
func (h *compressionHandlerImpl) CreateWriter(writer io.Writer) (io.Writer, func() error, error) {
	switch h.compressionType {
	case model.CompressionNone:
		return writer, func() error { return nil }, nil

	case model.CompressionGZ:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case model.CompressionBZ2:
		return nil, nil, errors.New("bzip2 compression is not supported for writing")

	case model.CompressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create xz writer")
		}
		return xzWriter, xzWriter.Close, nil

	case model.CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create zstd writer")
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, errors.Newf("unsupported compression type for writing: %v", h.compressionType)
	}
}

// Extension returns the file extension for this compression type
func (h *compressionHandlerImpl) Extension() string {
	return h.compressionType.Extension()
}

// openCompressedReader opens f and returns a reader that decompresses
// according to its compression.
func openCompressedReader(f *model.File) (io.Reader, func() error, error) {
	file, err := os.Open(f.Path()) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, nil, err
	}
	if !f.IsCompressed() {
		return file, file.Close, nil
	}

	handler := NewCompressionHandler(f.Compression())
	reader, cleanup, err := handler.CreateReader(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	compositeCleanup := func() error {
		cleanupErr := cleanup()
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return reader, compositeCleanup, nil
}

// createCompressedWriter creates f, truncating any existing file, and
// returns a writer that compresses according to its compression.
func createCompressedWriter(f *model.File) (io.Writer, func() error, error) {
	file, err := os.Create(f.Path()) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, nil, err
	}

	handler := NewCompressionHandler(f.Compression())
	writer, cleanup, err := handler.CreateWriter(file)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(f.Path())
		return nil, nil, err
	}

	compositeCleanup := func() error {
		cleanupErr := cleanup()
		if syncErr := file.Sync(); syncErr != nil && cleanupErr == nil {
			cleanupErr = syncErr
		}
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return writer, compositeCleanup, nil
}

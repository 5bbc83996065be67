package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpOptions(t *testing.T) {
	t.Parallel()

	t.Run("Defaults", func(t *testing.T) {
		t.Parallel()

		opts := NewDumpOptions()
		assert.Equal(t, OutputFormatCSV, opts.Format)
		assert.Equal(t, CompressionNone, opts.Compression)
		assert.Equal(t, ".csv", opts.FileExtension())
	})

	t.Run("Chained options do not mutate the receiver", func(t *testing.T) {
		t.Parallel()

		base := NewDumpOptions()
		opts := base.WithFormat(OutputFormatParquet).WithCompression(CompressionZSTD)
		assert.Equal(t, ".parquet.zst", opts.FileExtension())
		assert.Equal(t, OutputFormatCSV, base.Format)
	})
}

func TestOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   OutputFormat
		str      string
		ext      string
		fileType FileType
	}{
		{OutputFormatCSV, "csv", ".csv", FileTypeCSV},
		{OutputFormatTSV, "tsv", ".tsv", FileTypeTSV},
		{OutputFormatLTSV, "ltsv", ".ltsv", FileTypeLTSV},
		{OutputFormatXLSX, "xlsx", ".xlsx", FileTypeXLSX},
		{OutputFormatParquet, "parquet", ".parquet", FileTypeParquet},
		{OutputFormat(999), "csv", ".csv", FileTypeCSV},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.str, tt.format.String())
			assert.Equal(t, tt.ext, tt.format.Extension())
			assert.Equal(t, tt.fileType, tt.format.FileType())
		})
	}
}

func TestCompressionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compression CompressionType
		str         string
		ext         string
	}{
		{CompressionNone, "none", ""},
		{CompressionGZ, "gz", ".gz"},
		{CompressionBZ2, "bz2", ".bz2"},
		{CompressionXZ, "xz", ".xz"},
		{CompressionZSTD, "zstd", ".zst"},
		{CompressionType(42), "none", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.compression.String())
		assert.Equal(t, tt.ext, tt.compression.Extension())
	}
}

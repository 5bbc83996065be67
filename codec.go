package colframe

import (
	"github.com/nao1215/colframe/domain/model"
)

// TableReader decodes a file into a text table.
type TableReader interface {
	ReadTable(path string) (*model.Table, error)
}

// TableWriter encodes a text table into a file, replacing any existing file.
type TableWriter interface {
	WriteTable(path string, table *model.Table) error
}

// FileCodec reads and writes CSV, TSV, LTSV, XLSX and Parquet files,
// optionally compressed with gzip, bzip2, xz or zstd. The format is taken
// from the file extension, e.g. "data.tsv.zst". Writing bzip2 is not supported.
type FileCodec struct{}

var (
	_ TableReader = (*FileCodec)(nil)
	_ TableWriter = (*FileCodec)(nil)
)

// NewFileCodec creates a FileCodec.
func NewFileCodec() *FileCodec {
	return &FileCodec{}
}

// Type aliases for file options from model package
type (
	// DumpOptions represents options for dumping a frame
	DumpOptions = model.DumpOptions
	// OutputFormat represents the output file format
	OutputFormat = model.OutputFormat
	// CompressionType represents the compression type
	CompressionType = model.CompressionType
	// FileType represents a supported input file type
	FileType = model.FileType
)

// Re-export constants for easier use
const (
	// OutputFormatCSV represents CSV output format
	OutputFormatCSV = model.OutputFormatCSV
	// OutputFormatTSV represents TSV output format
	OutputFormatTSV = model.OutputFormatTSV
	// OutputFormatLTSV represents LTSV output format
	OutputFormatLTSV = model.OutputFormatLTSV
	// OutputFormatXLSX represents Excel XLSX output format
	OutputFormatXLSX = model.OutputFormatXLSX
	// OutputFormatParquet represents Parquet output format
	OutputFormatParquet = model.OutputFormatParquet

	// CompressionNone represents no compression
	CompressionNone = model.CompressionNone
	// CompressionGZ represents gzip compression
	CompressionGZ = model.CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2 = model.CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ = model.CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD = model.CompressionZSTD
)

// NewDumpOptions creates new DumpOptions with default values (CSV format, no compression)
var NewDumpOptions = model.NewDumpOptions

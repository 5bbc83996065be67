package model

import (
	"testing"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	header := NewHeader([]string{"col1", "col2"})
	records := []Record{
		NewRecord([]string{"val1", "val2"}),
		NewRecord([]string{"val3", "val4"}),
	}

	table := NewTable("test", header, records)

	if table.Name() != "test" {
		t.Errorf("expected name 'test', got %s", table.Name())
	}

	if len(table.Header()) != 2 || table.Header()[1] != "col2" {
		t.Errorf("expected header %v, got %v", header, table.Header())
	}

	if len(table.Records()) != 2 {
		t.Errorf("expected 2 records, got %d", len(table.Records()))
	}

	if got := table.Records()[0]; len(got) != 2 || got[0] != "val1" || got[1] != "val2" {
		t.Errorf("expected first record %v, got %v", records[0], table.Records()[0])
	}
}

func TestTableNameFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filePath string
		expected string
	}{
		{
			name:     "Simple file with extension",
			filePath: "data.csv",
			expected: "data",
		},
		{
			name:     "File with path",
			filePath: "/home/user/documents/data.csv",
			expected: "data",
		},
		{
			name:     "File with multiple dots",
			filePath: "data.backup.csv",
			expected: "data.backup",
		},
		{
			name:     "File without extension",
			filePath: "data",
			expected: "data",
		},
		{
			name:     "File with path and no extension",
			filePath: "/home/user/data",
			expected: "data",
		},
		{
			name:     "Hidden file",
			filePath: ".hidden",
			expected: "",
		},
		{
			name:     "Hidden file with extension",
			filePath: ".gitignore",
			expected: "",
		},
		{
			name:     "Compressed file",
			filePath: "data.csv.gz",
			expected: "data.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := TableNameFromPath(tt.filePath)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestTable_Column(t *testing.T) {
	t.Parallel()

	table := NewTable("test", NewHeader([]string{"a", "b"}), []Record{
		NewRecord([]string{"1", "x"}),
		NewRecord([]string{"2"}),
		NewRecord([]string{"3", "z"}),
	})

	got := table.Column(1)
	want := []string{"x", "", "z"}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTable_ColumnTypes(t *testing.T) {
	t.Parallel()

	table := NewTable("test", NewHeader([]string{"id", "code"}), []Record{
		NewRecord([]string{"1", "1.50"}),
		NewRecord([]string{"2", "2.0"}),
	})

	t.Run("Inferred without a declaration", func(t *testing.T) {
		t.Parallel()

		got := table.ColumnTypes()
		if len(got) != 2 || got[0] != ColumnTypeInteger || got[1] != ColumnTypeReal {
			t.Errorf("expected [INTEGER REAL], got %v", got)
		}
	})

	t.Run("Declared types win", func(t *testing.T) {
		t.Parallel()

		declared := table.WithColumnTypes([]ColumnType{ColumnTypeUnsigned, ColumnTypeText})
		got := declared.ColumnTypes()
		if len(got) != 2 || got[0] != ColumnTypeUnsigned || got[1] != ColumnTypeText {
			t.Errorf("expected declared types, got %v", got)
		}
		if inferred := table.ColumnTypes(); inferred[1] != ColumnTypeReal {
			t.Errorf("declaring types must not modify the source table, got %v", inferred)
		}
	})

	t.Run("Declaration of the wrong width is ignored", func(t *testing.T) {
		t.Parallel()

		got := table.WithColumnTypes([]ColumnType{ColumnTypeText}).ColumnTypes()
		if len(got) != 2 || got[1] != ColumnTypeReal {
			t.Errorf("expected inferred types, got %v", got)
		}
	})
}

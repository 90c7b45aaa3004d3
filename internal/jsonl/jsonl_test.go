package jsonl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")

	records := []json.RawMessage{
		json.RawMessage(`{"handle":"a","gramps_id":"I0001"}`),
		json.RawMessage(`{"handle":"b","gramps_id":"I0002"}`),
	}
	if err := Write(path, records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if string(got[0]) != string(records[0]) {
		t.Errorf("record 0 mismatch: %s", got[0])
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	content := "{\"handle\":\"a\"}\nnot json at all\n\n{\"handle\":\"b\"}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected malformed line skipped, got %d records", len(got))
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteEmptyTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := Write(path, []json.RawMessage{json.RawMessage(`{}`)}); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
}

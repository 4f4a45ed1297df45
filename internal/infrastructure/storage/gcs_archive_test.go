package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

type fakeWriter struct {
	buf      bytes.Buffer
	closed   bool
	closeErr error
}

func (w *fakeWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *fakeWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestGCSArchive_Put(t *testing.T) {
	w := &fakeWriter{}
	var gotName, gotType string
	a := &GCSArchive{bucket: "rental-docs", newWriter: func(_ context.Context, name, contentType string) io.WriteCloser {
		gotName, gotType = name, contentType
		return w
	}}

	url, err := a.Put(context.Background(), "/invoices/invoice-INV-1.pdf", "application/pdf", []byte("%PDF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://storage.googleapis.com/rental-docs/invoices/invoice-INV-1.pdf" {
		t.Fatalf("unexpected url: %s", url)
	}
	if gotName != "invoices/invoice-INV-1.pdf" || gotType != "application/pdf" {
		t.Fatalf("unexpected object: %s %s", gotName, gotType)
	}
	if !w.closed || w.buf.String() != "%PDF" {
		t.Fatalf("data must be written and the writer closed")
	}
}

func TestGCSArchive_Put_CloseError(t *testing.T) {
	a := &GCSArchive{bucket: "rental-docs", newWriter: func(context.Context, string, string) io.WriteCloser {
		return &fakeWriter{closeErr: errors.New("403 forbidden")}
	}}
	if _, err := a.Put(context.Background(), "x.pdf", "application/pdf", nil); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := a.Put(context.Background(), " ", "application/pdf", nil); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestNewGCSArchive_RequiresBucket(t *testing.T) {
	if _, err := NewGCSArchive(context.Background(), " ", ""); !errors.Is(err, ErrMissingBucket) {
		t.Fatalf("expected ErrMissingBucket, got %v", err)
	}
}

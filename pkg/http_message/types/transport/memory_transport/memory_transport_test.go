package memory_transport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecording(t *testing.T) {
	t.Parallel()

	memoryTransport := New()

	if memoryTransport.HeadersSent() {
		t.Fatalf("expected headers to not have been sent")
	}

	if err := memoryTransport.WriteHeaderLine("Content-Type", "text/html", true, 200); err != nil {
		t.Fatalf("write header line: %v", err)
	}

	if err := memoryTransport.WriteHeaderLine("Set-Cookie", "a=1", false, 200); err != nil {
		t.Fatalf("write header line: %v", err)
	}

	if err := memoryTransport.WriteStatusLine("HTTP/1.1", 200, "OK"); err != nil {
		t.Fatalf("write status line: %v", err)
	}

	writtenCount, err := memoryTransport.WriteBody([]byte("body"))
	if err != nil {
		t.Fatalf("write body: %v", err)
	}
	if writtenCount != 4 {
		t.Fatalf("expected 4 written bytes, got %d", writtenCount)
	}

	if !memoryTransport.HeadersSent() {
		t.Fatalf("expected headers to have been sent after a body write")
	}

	expectedStatusLine := &StatusLine{Protocol: "HTTP/1.1", StatusCode: 200, StatusText: "OK"}
	if diff := cmp.Diff(expectedStatusLine, memoryTransport.StatusLine); diff != "" {
		t.Fatalf("unexpected status line (-expected +got):\n%s", diff)
	}

	expectedHeaderLines := []*HeaderLine{
		{Name: "Content-Type", Value: "text/html", Replace: true, StatusCode: 200},
		{Name: "Set-Cookie", Value: "a=1", Replace: false, StatusCode: 200},
	}
	if diff := cmp.Diff(expectedHeaderLines, memoryTransport.HeaderLines); diff != "" {
		t.Fatalf("unexpected header lines (-expected +got):\n%s", diff)
	}

	if diff := cmp.Diff("body", string(memoryTransport.Body)); diff != "" {
		t.Fatalf("unexpected body (-expected +got):\n%s", diff)
	}
}

func TestPresetSent(t *testing.T) {
	t.Parallel()

	memoryTransport := New()
	memoryTransport.Sent = true

	if !memoryTransport.HeadersSent() {
		t.Fatalf("expected preset headers-sent state to be reported")
	}
}

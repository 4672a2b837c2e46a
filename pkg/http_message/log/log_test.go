package log

import (
	"context"
	"testing"

	"github.com/Motmedel/http_message_go/pkg/http_message"
	"github.com/google/go-cmp/cmp"
)

func TestHandleNilRecord(t *testing.T) {
	t.Parallel()

	responseContextExtractor := &ResponseContextExtractor{}

	if err := responseContextExtractor.Handle(context.Background(), nil); err != nil {
		t.Fatalf("handle: %v", err)
	}
}

func TestMakeStdResponse(t *testing.T) {
	t.Parallel()

	response, err := http_message.New("missing", 404)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	response.GetHeaders().Set("Content-Type", "text/plain")
	response.GetHeaders().Add("Set-Cookie", "a=1")
	response.GetHeaders().Add("Set-Cookie", "b=2")

	stdResponse := makeStdResponse(response)

	if stdResponse.StatusCode != 404 {
		t.Errorf("expected status code 404, got %d", stdResponse.StatusCode)
	}

	if stdResponse.Status != "404 Not Found" {
		t.Errorf("expected status \"404 Not Found\", got %q", stdResponse.Status)
	}

	if stdResponse.Proto != "HTTP/1.1" {
		t.Errorf("expected proto \"HTTP/1.1\", got %q", stdResponse.Proto)
	}

	if diff := cmp.Diff([]string{"a=1", "b=2"}, stdResponse.Header.Values("Set-Cookie")); diff != "" {
		t.Errorf("unexpected Set-Cookie values (-expected +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"text/plain"}, stdResponse.Header.Values("Content-Type")); diff != "" {
		t.Errorf("unexpected Content-Type values (-expected +got):\n%s", diff)
	}
}

package testing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Motmedel/http_message_go/pkg/http_message"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/transport/memory_transport"
	"github.com/google/go-cmp/cmp"
)

// Args describes a send assertion: the response to send and what must have
// reached the transport afterwards.
type Args struct {
	Response            *http_message.Response
	SendHeaders         bool
	ExpectedStatusLine  *memory_transport.StatusLine
	ExpectedHeaderLines []*memory_transport.HeaderLine
	ExpectedBody        []byte
	ExpectedSendError   error
}

func TestSend(t *testing.T, args *Args) {
	t.Helper()

	if args == nil {
		t.Fatalf("args is nil")
	}

	response := args.Response
	if response == nil {
		t.Fatalf("response is nil")
	}

	memoryTransport := memory_transport.New()

	err := response.Send(memoryTransport, args.SendHeaders)
	if expectedSendError := args.ExpectedSendError; expectedSendError != nil {
		if !errors.Is(err, expectedSendError) {
			t.Fatalf("send: got %v, expected %v", err, expectedSendError)
		}
		return
	}
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if diff := cmp.Diff(args.ExpectedStatusLine, memoryTransport.StatusLine); diff != "" {
		t.Errorf("status line mismatch (-expected +got):\n%s", diff)
	}

	if expectedHeaderLines := args.ExpectedHeaderLines; len(expectedHeaderLines) != 0 {
		if diff := cmp.Diff(expectedHeaderLines, memoryTransport.HeaderLines); diff != "" {
			t.Errorf("header lines mismatch (-expected +got):\n%s", diff)
		}
	}

	if !bytes.Equal(memoryTransport.Body, args.ExpectedBody) {
		t.Errorf("got body %q, expected body %q", memoryTransport.Body, args.ExpectedBody)
	}
}

// CompareError fails the test when got does not wrap want. A nil want demands
// a nil got.
func CompareError(t *testing.T, got error, want error) {
	t.Helper()

	if want == nil {
		if got != nil {
			t.Fatalf("expected no error, got %T: %v", got, got)
		}
		return
	}

	if got == nil {
		t.Fatalf("expected an error wrapping %q, got nil", want)
	}

	if !errors.Is(got, want) {
		t.Fatalf("expected an error wrapping %q, got %T: %v", want, got, got)
	}
}

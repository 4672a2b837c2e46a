package stream_transport

import (
	"fmt"
	"io"
	"strings"

	httpMessageErrors "github.com/Motmedel/http_message_go/pkg/http_message/errors"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

type headerLine struct {
	name  string
	value string
}

// StreamTransport writes a response in wire format to a writer. The head
// section is buffered and emitted once, on the first body write or on an
// explicit Flush; afterwards head writes fail with ErrHeadersAlreadySent and
// body bytes pass straight through.
type StreamTransport struct {
	writer      io.Writer
	statusLine  string
	headerLines []*headerLine
	flushed     bool
}

func New(writer io.Writer) *StreamTransport {
	return &StreamTransport{writer: writer}
}

func (streamTransport *StreamTransport) HeadersSent() bool {
	return streamTransport.flushed
}

func (streamTransport *StreamTransport) WriteStatusLine(protocol string, statusCode int, statusText string) error {
	if streamTransport.flushed {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrHeadersAlreadySent)
	}

	streamTransport.statusLine = fmt.Sprintf("%s %d %s\r\n", protocol, statusCode, statusText)
	return nil
}

func (streamTransport *StreamTransport) WriteHeaderLine(name string, value string, replace bool, statusCode int) error {
	if streamTransport.flushed {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrHeadersAlreadySent, name)
	}

	if replace {
		streamTransport.headerLines = removeNamedLines(streamTransport.headerLines, name)
	}

	streamTransport.headerLines = append(streamTransport.headerLines, &headerLine{name: name, value: value})
	return nil
}

func removeNamedLines(headerLines []*headerLine, name string) []*headerLine {
	keptHeaderLines := headerLines[:0]
	for _, presentHeaderLine := range headerLines {
		if !strings.EqualFold(presentHeaderLine.name, name) {
			keptHeaderLines = append(keptHeaderLines, presentHeaderLine)
		}
	}
	return keptHeaderLines
}

// Flush writes out the buffered head section. It is a no-op when the head has
// already been flushed.
func (streamTransport *StreamTransport) Flush() error {
	if streamTransport.flushed {
		return nil
	}
	return streamTransport.flushHead()
}

func (streamTransport *StreamTransport) flushHead() error {
	writer := streamTransport.writer
	if writer == nil {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrNilWriter)
	}

	var builder strings.Builder
	builder.WriteString(streamTransport.statusLine)
	for _, presentHeaderLine := range streamTransport.headerLines {
		builder.WriteString(fmt.Sprintf("%s: %s\r\n", presentHeaderLine.name, presentHeaderLine.value))
	}
	builder.WriteString("\r\n")

	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return motmedelErrors.New(fmt.Errorf("io write string: %w", err))
	}

	streamTransport.flushed = true

	return nil
}

func (streamTransport *StreamTransport) WriteBody(data []byte) (int, error) {
	if !streamTransport.flushed {
		if err := streamTransport.flushHead(); err != nil {
			return 0, fmt.Errorf("flush head: %w", err)
		}
	}

	if len(data) == 0 {
		return 0, nil
	}

	writtenCount, err := streamTransport.writer.Write(data)
	if err != nil {
		return writtenCount, motmedelErrors.New(fmt.Errorf("writer write: %w", err))
	}

	return writtenCount, nil
}

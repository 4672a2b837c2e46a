package response_writer_transport

import (
	"fmt"
	"net/http"

	httpMessageErrors "github.com/Motmedel/http_message_go/pkg/http_message/errors"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

// ResponseWriterTransport adapts a net/http response writer. The status code
// is held back until the first body write so that header lines can still be
// added; the protocol and reason phrase of status lines are discarded because
// a response writer controls those itself. An empty body with no status code
// defaults to 204, otherwise 200.
type ResponseWriterTransport struct {
	http.ResponseWriter
	WriteHeaderCalled bool
	WrittenStatusCode int

	statusCode int
}

func New(responseWriter http.ResponseWriter) *ResponseWriterTransport {
	return &ResponseWriterTransport{ResponseWriter: responseWriter}
}

func (responseWriterTransport *ResponseWriterTransport) WriteHeader(statusCode int) {
	responseWriterTransport.WriteHeaderCalled = true
	responseWriterTransport.WrittenStatusCode = statusCode
	responseWriterTransport.ResponseWriter.WriteHeader(statusCode)
}

func (responseWriterTransport *ResponseWriterTransport) HeadersSent() bool {
	return responseWriterTransport.WriteHeaderCalled
}

func (responseWriterTransport *ResponseWriterTransport) WriteStatusLine(protocol string, statusCode int, statusText string) error {
	if responseWriterTransport.WriteHeaderCalled {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrHeadersAlreadySent)
	}

	responseWriterTransport.statusCode = statusCode

	return nil
}

func (responseWriterTransport *ResponseWriterTransport) WriteHeaderLine(name string, value string, replace bool, statusCode int) error {
	if responseWriterTransport.ResponseWriter == nil {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrNilResponseWriter)
	}

	if responseWriterTransport.WriteHeaderCalled {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrHeadersAlreadySent, name)
	}

	header := responseWriterTransport.ResponseWriter.Header()
	if replace {
		header.Set(name, value)
	} else {
		header.Add(name, value)
	}

	return nil
}

func (responseWriterTransport *ResponseWriterTransport) WriteBody(data []byte) (int, error) {
	if responseWriterTransport.ResponseWriter == nil {
		return 0, motmedelErrors.NewWithTrace(httpMessageErrors.ErrNilResponseWriter)
	}

	if !responseWriterTransport.WriteHeaderCalled {
		statusCode := responseWriterTransport.statusCode
		if statusCode == 0 {
			statusCode = http.StatusOK
			if len(data) == 0 {
				statusCode = http.StatusNoContent
			}
		}
		responseWriterTransport.WriteHeader(statusCode)
	}

	if len(data) == 0 {
		return 0, nil
	}

	writtenCount, err := responseWriterTransport.ResponseWriter.Write(data)
	if err != nil {
		return writtenCount, motmedelErrors.New(fmt.Errorf("http response writer write: %w", err))
	}

	return writtenCount, nil
}

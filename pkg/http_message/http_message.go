// Package http_message provides an HTTP response value object that owns its
// status, headers, and body content, classifies itself, and emits itself over
// a transport.
package http_message

import (
	"fmt"
	httpMessageErrors "github.com/Motmedel/http_message_go/pkg/http_message/errors"
	"github.com/Motmedel/http_message_go/pkg/http_message/http_message_config"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/content"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/header_bag"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/server_environment"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/status"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/transport"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/Motmedel/utils_go/pkg/http/parsing/headers/content_type"
	"net/http"
	"strconv"
	"strings"
)

const contentTypeName = "Content-Type"

type Response struct {
	content     string
	statusCode  int
	statusText  string
	protocol    string
	charset     string
	headers     *header_bag.HeaderBag
	environment *server_environment.Environment
}

func New(contentValue any, statusCode int, options ...http_message_config.Option) (*Response, error) {
	config := http_message_config.New(options...)

	headers := config.Headers
	if headers == nil {
		headers = header_bag.New()
	}

	environment := config.Environment
	if environment == nil {
		environment = server_environment.New(nil)
	}

	protocol := config.Protocol
	if protocol == "" {
		protocol = environment.GetProtocol()
	}

	response := &Response{
		protocol:    protocol,
		charset:     config.Charset,
		headers:     headers,
		environment: environment,
	}

	if err := response.SetContent(contentValue); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}

	if statusText := config.StatusText; statusText != nil {
		if err := response.SetStatusCodeWithText(statusCode, *statusText); err != nil {
			return nil, fmt.Errorf("set status code with text: %w", err)
		}
	} else {
		if err := response.SetStatusCode(statusCode); err != nil {
			return nil, fmt.Errorf("set status code: %w", err)
		}
	}

	return response, nil
}

// SetStatusCode stores the status code and derives the reason phrase from the
// standard table, using "Unknown Status" for codes without one. The code is
// stored before validation so that a rejected code remains inspectable.
func (response *Response) SetStatusCode(statusCode int) error {
	response.statusCode = statusCode

	if status.IsInvalid(statusCode) {
		return motmedelErrors.NewWithTrace(&httpMessageErrors.InvalidStatusCodeError{StatusCode: statusCode})
	}

	statusText := status.GetText(statusCode)
	if statusText == "" {
		statusText = status.UnknownStatusText
	}
	response.statusText = statusText

	return nil
}

// SetStatusCodeWithText stores the status code with a verbatim reason phrase.
// An empty phrase suppresses the phrase on the wire.
func (response *Response) SetStatusCodeWithText(statusCode int, statusText string) error {
	response.statusCode = statusCode

	if status.IsInvalid(statusCode) {
		return motmedelErrors.NewWithTrace(&httpMessageErrors.InvalidStatusCodeError{StatusCode: statusCode})
	}

	response.statusText = statusText

	return nil
}

func (response *Response) GetStatusCode() (int, error) {
	statusCode := response.statusCode
	if statusCode == 0 {
		return 0, motmedelErrors.NewWithTrace(httpMessageErrors.ErrMissingStatusCode)
	}

	return statusCode, nil
}

// SetContent converts a value into body content. A JSON-serialized value also
// sets a Content-Type of application/json; an explicit Content-Type must
// therefore be set afterwards. The previous content is kept when the
// conversion fails.
func (response *Response) SetContent(value any) error {
	convertedContent, err := content.Convert(value)
	if err != nil {
		return fmt.Errorf("content convert: %w", err)
	}

	response.content = convertedContent.Value
	if convertedContent.Kind == content.KindJson {
		response.headers.Set(contentTypeName, "application/json")
	}

	return nil
}

func (response *Response) GetContent() string {
	return response.content
}

func (response *Response) GetStatusText() string {
	return response.statusText
}

func (response *Response) GetProtocol() string {
	return response.protocol
}

func (response *Response) SetProtocol(protocol string) {
	response.protocol = protocol
}

func (response *Response) GetCharset() string {
	return response.charset
}

func (response *Response) SetCharset(charset string) {
	response.charset = charset
}

func (response *Response) GetHeaders() *header_bag.HeaderBag {
	return response.headers
}

func (response *Response) GetEnvironment() *server_environment.Environment {
	return response.environment
}

func (response *Response) IsInvalid() bool {
	return status.IsInvalid(response.statusCode)
}

func (response *Response) IsInformational() bool {
	return status.IsInformational(response.statusCode)
}

func (response *Response) IsSuccessful() bool {
	return status.IsSuccessful(response.statusCode)
}

func (response *Response) IsEmpty() bool {
	return status.IsEmpty(response.statusCode)
}

func (response *Response) IsRedirect() bool {
	return status.IsRedirect(response.statusCode)
}

func (response *Response) IsRedirection() bool {
	return status.IsRedirection(response.statusCode)
}

func (response *Response) IsClientError() bool {
	return status.IsClientError(response.statusCode)
}

func (response *Response) IsServerError() bool {
	return status.IsServerError(response.statusCode)
}

// Prepare fixes up the response before sending. Informational and defined
// empty statuses lose their content along with Content-Type and
// Content-Length. Other responses gain a charset parameter on a text
// Content-Type that lacks one, lose their content on a HEAD request while any
// Content-Length is kept, and lose Content-Length when a Transfer-Encoding is
// set. It returns the response for chaining.
func (response *Response) Prepare(request *http.Request) *Response {
	headers := response.headers

	if status.IsInformational(response.statusCode) || status.IsEmpty(response.statusCode) {
		response.content = ""
		headers.Remove(contentTypeName)
		headers.Remove("Content-Length")

		return response
	}

	contentTypeValue := headers.Get(contentTypeName)
	if contentTypeValue == "" {
		headers.Set(contentTypeName, fmt.Sprintf("text/html; charset=%s", response.charset))
	} else {
		// Unparseable Content-Type values are left untouched.
		parsedContentType, err := content_type.ParseContentType([]byte(contentTypeValue))
		if err == nil && parsedContentType != nil && strings.EqualFold(parsedContentType.Type, "text") {
			if _, ok := parsedContentType.GetParametersMap(true)["charset"]; !ok {
				headers.Set(contentTypeName, fmt.Sprintf("%s; charset=%s", contentTypeValue, response.charset))
			}
		}
	}

	// A HEAD response keeps its Content-Length; only the body goes.
	if request != nil && request.Method == http.MethodHead {
		response.content = ""
	}

	if headers.Has("Transfer-Encoding") {
		headers.Remove("Content-Length")
	}

	return response
}

// SendHeaders emits the header lines followed by the status. It is a no-op
// when the transport reports that headers were already sent. The first
// Content-Type line replaces, further ones and all other headers append. A
// FastCGI environment receives the status as a Status header line instead of
// a status line.
func (response *Response) SendHeaders(transport transport.Transport) error {
	if transport == nil {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrNilTransport)
	}

	if transport.HeadersSent() {
		return nil
	}

	statusCode, err := response.GetStatusCode()
	if err != nil {
		return fmt.Errorf("get status code: %w", err)
	}

	contentTypeSeen := false
	for name, values := range response.headers.Entries() {
		isContentType := strings.EqualFold(name, contentTypeName)

		for _, value := range values {
			replace := isContentType && !contentTypeSeen
			if isContentType {
				contentTypeSeen = true
			}

			if err := transport.WriteHeaderLine(name, value, replace, statusCode); err != nil {
				return motmedelErrors.New(fmt.Errorf("transport write header line: %w", err), name, value)
			}
		}
	}

	if response.environment.IsFastCgi() {
		statusValue := strconv.Itoa(statusCode) + " " + response.statusText
		if err := transport.WriteHeaderLine("Status", statusValue, true, statusCode); err != nil {
			return motmedelErrors.New(fmt.Errorf("transport write header line (status): %w", err), statusValue)
		}
	} else {
		if err := transport.WriteStatusLine(response.protocol, statusCode, response.statusText); err != nil {
			return motmedelErrors.New(fmt.Errorf("transport write status line: %w", err), statusCode)
		}
	}

	return nil
}

// SendContent writes the body to the transport. The write happens even for
// empty content so that transports which flush their head section on the
// first body write emit bodyless responses too.
func (response *Response) SendContent(transport transport.Transport) error {
	if transport == nil {
		return motmedelErrors.NewWithTrace(httpMessageErrors.ErrNilTransport)
	}

	if _, err := transport.WriteBody([]byte(response.content)); err != nil {
		return motmedelErrors.New(fmt.Errorf("transport write body: %w", err))
	}

	return nil
}

func (response *Response) Send(transport transport.Transport, sendHeaders bool) error {
	if sendHeaders {
		if err := response.SendHeaders(transport); err != nil {
			return fmt.Errorf("send headers: %w", err)
		}
	}

	if err := response.SendContent(transport); err != nil {
		return fmt.Errorf("send content: %w", err)
	}

	return nil
}

// String renders the response in wire format.
func (response *Response) String() string {
	return fmt.Sprintf(
		"%s %d %s\r\n%s\r\n%s",
		response.protocol,
		response.statusCode,
		response.statusText,
		response.headers.String(),
		response.content,
	)
}

// Clone duplicates the response with an independent header bag. The
// environment is shared; it is read-only.
func (response *Response) Clone() *Response {
	clonedResponse := *response
	clonedResponse.headers = response.headers.Clone()

	return &clonedResponse
}

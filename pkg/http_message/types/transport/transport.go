package transport

// Transport is the sink a response is sent over. Implementations must report
// HeadersSent truthfully once the head section can no longer be changed; a
// sender checks it before emitting any head line. The head section consists of
// at most one status line and any number of header lines, and precedes all
// body writes.
//
// WriteHeaderLine receives the response status code with every line so that
// sinks which bind a code to the head section (as a FastCGI Status line does)
// can pick it up. A replace line supersedes previously written lines with the
// same name, case-insensitively.
type Transport interface {
	HeadersSent() bool
	WriteStatusLine(protocol string, statusCode int, statusText string) error
	WriteHeaderLine(name string, value string, replace bool, statusCode int) error
	WriteBody(data []byte) (int, error)
}

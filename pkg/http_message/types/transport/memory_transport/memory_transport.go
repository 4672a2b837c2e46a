package memory_transport

// StatusLine is a recorded status line write.
type StatusLine struct {
	Protocol   string
	StatusCode int
	StatusText string
}

// HeaderLine is a recorded header line write, kept verbatim so that the
// replace flag and the bound status code can be asserted on.
type HeaderLine struct {
	Name       string
	Value      string
	Replace    bool
	StatusCode int
}

// MemoryTransport records everything written to it. Sent can be preset to
// exercise the no-op behavior of senders that honor HeadersSent.
type MemoryTransport struct {
	StatusLine  *StatusLine
	HeaderLines []*HeaderLine
	Body        []byte
	Sent        bool
}

func New() *MemoryTransport {
	return &MemoryTransport{}
}

func (memoryTransport *MemoryTransport) HeadersSent() bool {
	return memoryTransport.Sent
}

func (memoryTransport *MemoryTransport) WriteStatusLine(protocol string, statusCode int, statusText string) error {
	memoryTransport.StatusLine = &StatusLine{
		Protocol:   protocol,
		StatusCode: statusCode,
		StatusText: statusText,
	}
	return nil
}

func (memoryTransport *MemoryTransport) WriteHeaderLine(name string, value string, replace bool, statusCode int) error {
	memoryTransport.HeaderLines = append(
		memoryTransport.HeaderLines,
		&HeaderLine{Name: name, Value: value, Replace: replace, StatusCode: statusCode},
	)
	return nil
}

func (memoryTransport *MemoryTransport) WriteBody(data []byte) (int, error) {
	memoryTransport.Body = append(memoryTransport.Body, data...)
	memoryTransport.Sent = true
	return len(data), nil
}

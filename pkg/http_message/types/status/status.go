package status

// UnknownStatusText is the reason phrase used for codes that are within the
// legal range but have no registered phrase.
const UnknownStatusText = "Unknown Status"

const (
	MinimumCode = 100
	MaximumCode = 600
)

var codeToText = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	103: "Early Hints",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Request Entity Too Large",
	414: "Request URI Too Long",
	415: "Unsupported Media Type",
	416: "Requested Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}

// GetText returns the standard reason phrase for a status code. The empty
// string is returned for codes without a registered phrase.
func GetText(code int) string {
	return codeToText[code]
}

func IsInvalid(code int) bool {
	return code < MinimumCode || code >= MaximumCode
}

func IsInformational(code int) bool {
	return code >= 100 && code < 200
}

func IsSuccessful(code int) bool {
	return code >= 200 && code < 300
}

// IsEmpty reports whether a status code denotes a defined-empty response;
// such responses must not carry a body.
func IsEmpty(code int) bool {
	return code == 204 || code == 304
}

// IsRedirect reports whether a status code is in the enumerated set of
// redirect codes that call for a Location header.
func IsRedirect(code int) bool {
	switch code {
	case 301, 302, 303, 307, 308:
		return true
	}
	return false
}

// IsRedirection is the broader 3xx range check. 300, 304, 305 and 306 are
// within the range but not part of the IsRedirect set.
func IsRedirection(code int) bool {
	return code >= 300 && code < 400
}

func IsClientError(code int) bool {
	return code >= 400 && code < 500
}

func IsServerError(code int) bool {
	return code >= 500 && code < 600
}

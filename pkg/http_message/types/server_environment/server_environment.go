package server_environment

import (
	"strings"

	"github.com/Motmedel/http_message_go/pkg/http_message/types/parameter_bag"
)

const (
	ServerProtocolKey       = "SERVER_PROTOCOL"
	FastCgiServerVersionKey = "FCGI_SERVER_VERSION"

	DefaultProtocol = "HTTP/1.1"
)

// Environment is a read-only view of server variables in the shape of a CGI
// environment. Responses consult it for the protocol and for detecting a
// FastCGI server.
type Environment struct {
	parameterBag *parameter_bag.ParameterBag
}

func New(parameterBag *parameter_bag.ParameterBag) *Environment {
	if parameterBag == nil {
		parameterBag = parameter_bag.New()
	}

	return &Environment{parameterBag: parameterBag}
}

// FromEnviron creates an environment from "KEY=value" pairs as produced by
// os.Environ. Malformed pairs without an equals sign are skipped.
func FromEnviron(environ []string) *Environment {
	parameterBag := parameter_bag.New()

	for _, pair := range environ {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		parameterBag.Set(key, value)
	}

	return New(parameterBag)
}

func (environment *Environment) Get(key string) string {
	value, _ := environment.parameterBag.Get(key).(string)
	return value
}

func (environment *Environment) Has(key string) bool {
	return environment.parameterBag.Has(key)
}

// GetProtocol returns the SERVER_PROTOCOL value, or "HTTP/1.1" when the
// variable is absent or empty.
func (environment *Environment) GetProtocol() string {
	if protocol := environment.Get(ServerProtocolKey); protocol != "" {
		return protocol
	}
	return DefaultProtocol
}

// IsFastCgi reports whether the environment indicates a FastCGI server, in
// which case the status is conveyed via a Status header line rather than a
// status line.
func (environment *Environment) IsFastCgi() bool {
	return environment.Get(FastCgiServerVersionKey) != ""
}

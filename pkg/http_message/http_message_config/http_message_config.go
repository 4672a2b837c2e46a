package http_message_config

import (
	"github.com/Motmedel/http_message_go/pkg/http_message/types/header_bag"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/server_environment"
)

var DefaultCharset = "UTF-8"

type Config struct {
	Headers     *header_bag.HeaderBag
	Environment *server_environment.Environment
	Protocol    string
	Charset     string
	StatusText  *string
}

type Option func(*Config)

func New(options ...Option) *Config {
	config := &Config{
		Charset: DefaultCharset,
	}
	for _, option := range options {
		option(config)
	}

	return config
}

func WithHeaders(headers *header_bag.HeaderBag) Option {
	return func(config *Config) {
		config.Headers = headers
	}
}

func WithEnvironment(environment *server_environment.Environment) Option {
	return func(config *Config) {
		config.Environment = environment
	}
}

func WithProtocol(protocol string) Option {
	return func(config *Config) {
		config.Protocol = protocol
	}
}

func WithCharset(charset string) Option {
	return func(config *Config) {
		config.Charset = charset
	}
}

// WithStatusText overrides the reason phrase derived from the status code. An
// empty string suppresses the phrase.
func WithStatusText(statusText string) Option {
	return func(config *Config) {
		config.StatusText = &statusText
	}
}

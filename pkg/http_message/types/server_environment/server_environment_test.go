package server_environment

import (
	"testing"

	"github.com/Motmedel/http_message_go/pkg/http_message/types/parameter_bag"
)

func TestFromEnviron(t *testing.T) {
	t.Parallel()

	environment := FromEnviron([]string{
		"SERVER_PROTOCOL=HTTP/2.0",
		"GATEWAY_INTERFACE=CGI/1.1",
		"EMPTY=",
		"malformed",
		"WITH=equals=inside",
	})

	testCases := []struct {
		name          string
		key           string
		expectedValue string
		expectedHas   bool
	}{
		{name: "plain value", key: "GATEWAY_INTERFACE", expectedValue: "CGI/1.1", expectedHas: true},
		{name: "empty value", key: "EMPTY", expectedValue: "", expectedHas: true},
		{name: "malformed pair skipped", key: "malformed", expectedValue: "", expectedHas: false},
		{name: "value containing equals", key: "WITH", expectedValue: "equals=inside", expectedHas: true},
		{name: "absent key", key: "ABSENT", expectedValue: "", expectedHas: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if value := environment.Get(testCase.key); value != testCase.expectedValue {
				t.Errorf("expected %q, got %q", testCase.expectedValue, value)
			}

			if has := environment.Has(testCase.key); has != testCase.expectedHas {
				t.Errorf("expected has=%v, got %v", testCase.expectedHas, has)
			}
		})
	}
}

func TestGetProtocol(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		environment      *Environment
		expectedProtocol string
	}{
		{
			name:             "explicit protocol",
			environment:      FromEnviron([]string{"SERVER_PROTOCOL=HTTP/1.0"}),
			expectedProtocol: "HTTP/1.0",
		},
		{
			name:             "absent protocol",
			environment:      New(nil),
			expectedProtocol: "HTTP/1.1",
		},
		{
			name:             "empty protocol",
			environment:      FromEnviron([]string{"SERVER_PROTOCOL="}),
			expectedProtocol: "HTTP/1.1",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if protocol := testCase.environment.GetProtocol(); protocol != testCase.expectedProtocol {
				t.Errorf("expected %q, got %q", testCase.expectedProtocol, protocol)
			}
		})
	}
}

func TestIsFastCgi(t *testing.T) {
	t.Parallel()

	parameterBag := parameter_bag.New()
	parameterBag.Set("FCGI_SERVER_VERSION", "1.0")

	if !New(parameterBag).IsFastCgi() {
		t.Errorf("expected a FastCGI environment")
	}

	if New(nil).IsFastCgi() {
		t.Errorf("expected a non-FastCGI environment")
	}
}

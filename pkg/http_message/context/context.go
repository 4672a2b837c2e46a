package context

import (
	"context"

	"github.com/Motmedel/http_message_go/pkg/http_message"
)

type responseContextType struct{}

var ResponseContextKey responseContextType

func WithResponse(parent context.Context, response *http_message.Response) context.Context {
	return context.WithValue(parent, ResponseContextKey, response)
}

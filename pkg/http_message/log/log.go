package log

import (
	"context"
	"fmt"
	"github.com/Motmedel/ecs_go/ecs"
	"github.com/Motmedel/http_message_go/pkg/http_message"
	httpMessageContext "github.com/Motmedel/http_message_go/pkg/http_message/context"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	motmedelHttpTypes "github.com/Motmedel/utils_go/pkg/http/types"
	motmedelJson "github.com/Motmedel/utils_go/pkg/json"
	motmedelLog "github.com/Motmedel/utils_go/pkg/log"
	"log/slog"
	"net/http"
)

var DefaultHeaderExtractor = ecs.DefaultMaskedHeaderExtractor

// ResponseContextExtractor enriches log records with ECS http fields taken
// from a response stored in the context via context.WithResponse.
type ResponseContextExtractor struct {
	HeaderExtractor func(any) string
}

func (responseContextExtractor *ResponseContextExtractor) Handle(ctx context.Context, record *slog.Record) error {
	if record == nil {
		return nil
	}

	response, ok := ctx.Value(httpMessageContext.ResponseContextKey).(*http_message.Response)
	if !ok || response == nil {
		return nil
	}

	httpContext := &motmedelHttpTypes.HttpContext{
		Response:     makeStdResponse(response),
		ResponseBody: []byte(response.GetContent()),
	}

	headerExtractor := responseContextExtractor.HeaderExtractor
	if headerExtractor == nil {
		headerExtractor = DefaultHeaderExtractor
	}

	base, err := ecs.ParseHttpContext(httpContext, headerExtractor)
	if err != nil {
		return motmedelErrors.New(fmt.Errorf("ecs parse http context: %w", err), httpContext)
	}

	baseMap, err := motmedelJson.ObjectToMap(base)
	if err != nil {
		return motmedelErrors.New(fmt.Errorf("object to map: %w", err), base)
	}

	record.Add(motmedelLog.AttrsFromMap(baseMap)...)

	return nil
}

// makeStdResponse converts a response into the standard library shape the ECS
// parser consumes. A missing status code is rendered as zero rather than
// failing the record.
func makeStdResponse(response *http_message.Response) *http.Response {
	header := make(http.Header)
	for name, values := range response.GetHeaders().Entries() {
		for _, value := range values {
			header.Add(name, value)
		}
	}

	statusCode, _ := response.GetStatusCode()

	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, response.GetStatusText()),
		Proto:      response.GetProtocol(),
		Header:     header,
	}
}

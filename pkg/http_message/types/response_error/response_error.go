package response_error

import (
	"fmt"
	"github.com/Motmedel/http_message_go/pkg/http_message"
	httpMessageErrors "github.com/Motmedel/http_message_go/pkg/http_message/errors"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/header_bag"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/problem_detail"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/status"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"strings"
)

type ResponseErrorType int

const (
	ResponseErrorType_Invalid ResponseErrorType = iota
	ResponseErrorType_ClientError
	ResponseErrorType_ServerError
)

// ResponseError carries a problem detail and the underlying errors for a
// failed request, and can turn itself into a sendable response.
type ResponseError struct {
	Detail      *problem_detail.Detail
	Headers     []*header_bag.Entry
	ClientError error
	ServerError error
}

func (responseError *ResponseError) GetType() ResponseErrorType {
	if responseError.ServerError != nil {
		return ResponseErrorType_ServerError
	} else if responseError.ClientError != nil {
		return ResponseErrorType_ClientError
	} else if detail := responseError.Detail; detail != nil {
		statusCode := detail.Status
		if status.IsClientError(statusCode) {
			return ResponseErrorType_ClientError
		} else if status.IsServerError(statusCode) {
			return ResponseErrorType_ServerError
		}
	}

	return ResponseErrorType_Invalid
}

// GetEffectiveDetail returns the given detail, or one synthesized from the
// underlying errors when no detail was provided.
func (responseError *ResponseError) GetEffectiveDetail() (*problem_detail.Detail, error) {
	if detail := responseError.Detail; detail != nil {
		return detail, nil
	}

	if responseError.ClientError != nil && responseError.ServerError != nil {
		return nil, motmedelErrors.NewWithTrace(httpMessageErrors.ErrMultipleResponseErrorErrors)
	}

	if responseError.ServerError != nil {
		return problem_detail.MakeInternalServerErrorDetail("", nil), nil
	}

	if responseError.ClientError != nil {
		return problem_detail.MakeBadRequestDetail("", nil), nil
	}

	return nil, motmedelErrors.NewWithTrace(
		fmt.Errorf(
			"%w: %w, %w",
			httpMessageErrors.ErrUnusableResponseError,
			httpMessageErrors.ErrNilProblemDetail,
			httpMessageErrors.ErrEmptyResponseErrorErrors,
		),
	)
}

// MakeResponse builds a response whose content is the rendered problem detail
// and whose Content-Type is application/problem+json. Content-Type entries
// among the carried headers are dropped.
func (responseError *ResponseError) MakeResponse() (*http_message.Response, error) {
	detail, err := responseError.GetEffectiveDetail()
	if err != nil {
		return nil, fmt.Errorf("get effective detail: %w", err)
	}

	statusCode := detail.Status
	if statusCode == 0 {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf(
				"%w: problem detail: %w",
				httpMessageErrors.ErrUnusableResponseError,
				httpMessageErrors.ErrEmptyStatus,
			),
		)
	}

	response, err := http_message.New(detail, statusCode)
	if err != nil {
		return nil, motmedelErrors.New(fmt.Errorf("http message new: %w", err), detail, statusCode)
	}

	headers := response.GetHeaders()
	for _, entry := range responseError.Headers {
		if entry == nil || entry.Name == "" {
			continue
		}

		if strings.EqualFold(entry.Name, "Content-Type") {
			continue
		}

		for _, value := range entry.Values {
			headers.Add(entry.Name, value)
		}
	}

	headers.Set("Content-Type", "application/problem+json")

	return response, nil
}

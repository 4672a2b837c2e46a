package problem_detail

import (
	"encoding/json"
	"fmt"
	"github.com/Motmedel/http_message_go/pkg/http_message/types/status"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/google/uuid"
	"net/http"
)

// Detail is an RFC 9457 problem detail document. Extension members are
// flattened into the document when it is serialized.
type Detail struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	Status    int    `json:"status,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance,omitempty"`
	Extension any    `json:"extension,omitempty"`
}

func (detail *Detail) makeOutputMap() (map[string]any, error) {
	detailData, err := json.Marshal(detail)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json marshal: %w", err))
	}

	var outputMap map[string]any
	if err := json.Unmarshal(detailData, &outputMap); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json unmarshal: %w", err))
	}

	if extension, ok := outputMap["extension"]; ok {
		delete(outputMap, "extension")

		extensionData, err := json.Marshal(extension)
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json marshal (extension): %w", err))
		}

		var extensionMap map[string]any
		if err := json.Unmarshal(extensionData, &extensionMap); err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json unmarshal (extension): %w", err))
		}

		for key, value := range extensionMap {
			outputMap[key] = value
		}
	}

	return outputMap, nil
}

func (detail *Detail) Bytes() ([]byte, error) {
	outputMap, err := detail.makeOutputMap()
	if err != nil {
		return nil, fmt.Errorf("make output map: %w", err)
	}

	outputData, err := json.Marshal(outputMap)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json marshal: %w", err))
	}

	return outputData, nil
}

func (detail *Detail) String() (string, error) {
	detailData, err := detail.Bytes()
	if err != nil {
		return "", fmt.Errorf("bytes: %w", err)
	}

	return string(detailData), nil
}

// Render produces the serialized document, making a detail usable as
// renderable response content.
func (detail *Detail) Render() (string, error) {
	return detail.String()
}

func MakeStatusCodeDetail(statusCode int, detailText string, extension any) *Detail {
	return &Detail{
		Type:      "about:blank",
		Title:     status.GetText(statusCode),
		Status:    statusCode,
		Detail:    detailText,
		Instance:  uuid.New().String(),
		Extension: extension,
	}
}

func MakeInternalServerErrorDetail(detailText string, extension any) *Detail {
	return MakeStatusCodeDetail(http.StatusInternalServerError, detailText, extension)
}

func MakeBadRequestDetail(detailText string, extension any) *Detail {
	return MakeStatusCodeDetail(http.StatusBadRequest, detailText, extension)
}

package report

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const MIMETypePDF = "application/pdf"

// Encode builds a base64 data URI for the given content.
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Parse splits a base64 data URI into its media type and decoded bytes.
func Parse(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}

	meta, payload, found := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !found {
		return "", nil, fmt.Errorf("data URI has no payload")
	}

	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	if mimeType == "" {
		return "", nil, fmt.Errorf("data URI has no media type")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URI payload: %w", err)
	}

	return mimeType, data, nil
}

// ParsePDF decodes a data URI and rejects any declared media type other
// than PDF. The content itself is not inspected.
func ParsePDF(uri string) ([]byte, error) {
	mimeType, data, err := Parse(uri)
	if err != nil {
		return nil, err
	}

	if mimeType != MIMETypePDF {
		return nil, fmt.Errorf("unsupported file type %q, only PDF reports are accepted", mimeType)
	}

	return data, nil
}

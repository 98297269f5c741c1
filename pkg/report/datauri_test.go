package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	original := []byte("%PDF-1.7\nsome report bytes\x00\x01\x02")

	uri := Encode(MIMETypePDF, original)

	if !strings.HasPrefix(uri, "data:") {
		t.Errorf("encoded URI missing data: prefix: %q", uri)
	}
	if !strings.Contains(uri, ";base64,") {
		t.Errorf("encoded URI missing base64 marker: %q", uri)
	}

	mimeType, data, err := Parse(uri)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if mimeType != MIMETypePDF {
		t.Errorf("got mime type %q, want %q", mimeType, MIMETypePDF)
	}
	if !bytes.Equal(data, original) {
		t.Errorf("round trip mismatch: got %q, want %q", data, original)
	}
}

func TestParseRejectsMalformedURIs(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{
			name: "missing data prefix",
			uri:  "application/pdf;base64,JVBERg==",
		},
		{
			name: "no payload separator",
			uri:  "data:application/pdf;base64",
		},
		{
			name: "not base64 encoded",
			uri:  "data:text/plain,hello",
		},
		{
			name: "missing media type",
			uri:  "data:;base64,JVBERg==",
		},
		{
			name: "invalid base64 payload",
			uri:  "data:application/pdf;base64,!!!not-base64!!!",
		},
		{
			name: "empty string",
			uri:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Parse(tt.uri); err == nil {
				t.Errorf("expected error for %q, got none", tt.uri)
			}
		})
	}
}

func TestParsePDFRejectsOtherTypes(t *testing.T) {
	uri := Encode("text/plain", []byte("just text"))

	_, err := ParsePDF(uri)
	if err == nil {
		t.Fatal("expected error for non-PDF media type, got none")
	}
	if !strings.Contains(err.Error(), "text/plain") {
		t.Errorf("error should name the rejected type, got: %v", err)
	}
}

func TestParsePDFAcceptsPDF(t *testing.T) {
	original := []byte("%PDF-1.4 minimal")

	data, err := ParsePDF(Encode(MIMETypePDF, original))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, original) {
		t.Errorf("got %q, want %q", data, original)
	}
}

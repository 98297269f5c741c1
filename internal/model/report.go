package model

import "time"

type ReportDocument struct {
	MIMEType string
	Data     []byte
	FileName string
}

type BlogPost struct {
	HTML          string
	ModelUsed     string
	PromptVersion string
	GeneratedAt   time.Time
}

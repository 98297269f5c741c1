package handler

type AnalyzeRequest struct {
	ReportDataURI string `json:"report_data_uri"`
	ModelID       string `json:"model_id"`
	APIKey        string `json:"api_key"`
	FileName      string `json:"file_name"`
}

type AnalyzeResponse struct {
	BlogPostHTML  string `json:"blog_post_html"`
	ModelUsed     string `json:"model_used"`
	PromptVersion string `json:"prompt_version"`
	GeneratedAt   string `json:"generated_at"`
}

type UploadResponse struct {
	ReportDataURI string `json:"report_data_uri"`
	FileName      string `json:"file_name"`
	Size          int64  `json:"size"`
}

type ModelResponse struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	Label    string `json:"label"`
	Default  bool   `json:"default"`
}

package models

// PromptRequest is the body of POST /generate. A missing prompt is treated
// as an empty string.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// ReviewRequest is assembled from the multipart form of POST /review_upload.
type ReviewRequest struct {
	FileName       string
	Data           []byte
	JobDescription string
}

// DownloadRequest is the body of POST /download_pdf.
type DownloadRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

const DefaultDownloadFilename = "resume.pdf"

// ResolvedFilename returns the requested attachment name or the default.
func (r DownloadRequest) ResolvedFilename() string {
	if r.Filename == "" {
		return DefaultDownloadFilename
	}
	return r.Filename
}

// Package models defines the data shapes exchanged with the Quark paper
// service and held by the client while a view is open.
package models

import "time"

// NamedRef is a reference to a named backend entity (subject, course, ...)
// embedded in list responses.
type NamedRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// PaperSummary is one entry of the paper list. Summaries are immutable for
// the lifetime of a dashboard view and never persisted locally.
type PaperSummary struct {
	ID               string    `json:"_id"`
	Title            string    `json:"title"`
	Subject          NamedRef  `json:"subject"`
	Course           NamedRef  `json:"course"`
	Semester         string    `json:"semester"`
	ValidFrom        time.Time `json:"validFrom"`
	ValidTo          time.Time `json:"validTo"`
	RequiresPassword bool      `json:"requiresPassword"`
}

// WatermarkInfo identifies the viewer a protected document was resolved for.
// The server includes it with every authenticated view response.
type WatermarkInfo struct {
	StudentName string    `json:"studentName"`
	StudentID   string    `json:"studentId"`
	Timestamp   time.Time `json:"timestamp"`
}

// ResolvedPaper is the decrypted content of one paper, owned exclusively by
// the viewer while it is open. Content is a base64 data URI as returned by
// the service.
type ResolvedPaper struct {
	Title            string         `json:"title"`
	Content          string         `json:"content"`
	Watermark        *WatermarkInfo `json:"watermarkInfo,omitempty"`
	RequiresPassword bool           `json:"requiresPassword"`
}

// UploadRequest carries a new paper to the service. Content is the raw
// document encoded as base64 (without a data-URI prefix).
type UploadRequest struct {
	Title         string `json:"title"`
	Subject       string `json:"subject"`
	Course        string `json:"course"`
	Semester      string `json:"semester"`
	Section       string `json:"section,omitempty"`
	ValidFrom     string `json:"validFrom"`
	ValidTo       string `json:"validTo"`
	Content       string `json:"content"`
	PaperPassword string `json:"paperPassword,omitempty"`
}

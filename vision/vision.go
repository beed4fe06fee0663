// Package vision forwards uploaded images to an external vision-capable
// model and relays its JSON verdict. It is a pure proxy: the model decides
// the category, the caption, and whether an image is a schedule; this
// package only builds the request and parses the response.
package vision

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Config holds the settings for the vision client.
type Config struct {
	APIKey          string
	Model           string // defaults to gemini-2.0-flash
	MaxOutputTokens int32  // defaults to 2000
}

// Client calls a vision-capable model endpoint.
type Client struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
}

// NewClient creates a vision client. The API key is required.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("vision: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 2000
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("vision: create client: %w", err)
	}
	return &Client{
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

// ImageAnalysis is the model's verdict on a single photo. All fields are
// untrusted free text from the model.
type ImageAnalysis struct {
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SuggestedDate *string  `json:"suggestedDate"`
	Tags          []string `json:"tags"`
	Audience      string   `json:"audience"`
	Confidence    float64  `json:"confidence"`
}

// ClassInfo is one extracted class from a schedule image.
type ClassInfo struct {
	ClassNumber int      `json:"classNumber"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// ScheduleResult is the model's verdict on a schedule-or-photo image. When
// IsSchedule is true the schedule fields are set; otherwise the single-event
// fields mirror ImageAnalysis. The branch is decided entirely by the model.
type ScheduleResult struct {
	IsSchedule bool `json:"isSchedule"`

	// Schedule extraction
	CourseName string      `json:"courseName,omitempty"`
	Instructor string      `json:"instructor,omitempty"`
	Location   string      `json:"location,omitempty"`
	Classes    []ClassInfo `json:"classes,omitempty"`

	// Single-event analysis
	Category      string   `json:"category,omitempty"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	SuggestedDate *string  `json:"suggestedDate,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Audience      string   `json:"audience,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
	RelatedTo     string   `json:"relatedTo,omitempty"`
}

// AnalyzeImage asks the model to categorize a single photo and generate
// website metadata for it.
func (c *Client) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*ImageAnalysis, error) {
	text, err := c.generate(ctx, analyzeSystemPrompt, analyzeUserPrompt, data, mimeType)
	if err != nil {
		return nil, err
	}
	var analysis ImageAnalysis
	if err := parseModelJSON(text, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AnalyzeSchedule asks the model to either extract every class from a
// schedule image or, for a photo, categorize it like AnalyzeImage.
func (c *Client) AnalyzeSchedule(ctx context.Context, data []byte, mimeType string) (*ScheduleResult, error) {
	text, err := c.generate(ctx, scheduleSystemPrompt, scheduleUserPrompt, data, mimeType)
	if err != nil {
		return nil, err
	}
	var result ScheduleResult
	if err := parseModelJSON(text, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) generate(ctx context.Context, system, user string, data []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	parts := []*genai.Part{
		genai.NewPartFromText(user),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.3),
		MaxOutputTokens:   c.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("vision: model call failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("vision: no analysis returned")
	}
	return text, nil
}

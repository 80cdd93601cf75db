package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ConceptImage is one generated preview image tagged by viewing angle.
type ConceptImage struct {
	Angle    string `json:"angle"`
	ImageURL string `json:"image_url"`
}

var conceptAngles = []string{"front", "side", "top", "perspective"}

// ImageClient talks to the image-generation service. With no base URL
// configured it returns placeholder concept images instead of calling out.
type ImageClient struct {
	baseURL    string
	longClient *http.Client
}

// NewImageClient creates a new image-generation client.
func NewImageClient(baseURL string) *ImageClient {
	return &ImageClient{
		baseURL: baseURL,
		longClient: &http.Client{
			Timeout: LongTimeout,
		},
	}
}

// GenerateConcepts produces four concept images for a prompt, one per
// viewing angle.
func (c *ImageClient) GenerateConcepts(ctx context.Context, projectID, prompt string) ([]ConceptImage, error) {
	logger := NewLogger(ctx)

	if c.baseURL == "" {
		logger.LogInfof("generate_concepts", "no upstream configured, returning placeholders for project_id=%s", projectID)
		return placeholderConcepts(prompt), nil
	}

	body, err := json.Marshal(map[string]any{
		"project_id": projectID,
		"prompt":     prompt,
		"angles":     conceptAngles,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/concepts", bytes.NewReader(body))
	if err != nil {
		logger.LogError("generate_concepts", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.longClient.Do(req)
	if err != nil {
		logger.LogError("generate_concepts", err)
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.LogWarnf("generate_concepts", "upstream returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("image generation failed with status %d", resp.StatusCode)
	}

	var out struct {
		Concepts []ConceptImage `json:"concepts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	logger.LogInfof("generate_concepts", "generated %d concepts in %s", len(out.Concepts), time.Since(start))
	return out.Concepts, nil
}

func placeholderConcepts(prompt string) []ConceptImage {
	out := make([]ConceptImage, 0, len(conceptAngles))
	for _, angle := range conceptAngles {
		out = append(out, ConceptImage{
			Angle:    angle,
			ImageURL: fmt.Sprintf("https://placehold.co/512x512?text=%s", url.QueryEscape(angle+" view: "+prompt)),
		})
	}
	return out
}

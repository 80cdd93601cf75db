package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"time"
)

// ReconstructResult is the mesh produced by 3D reconstruction.
type ReconstructResult struct {
	ObjectKey     string `json:"object_key"`
	Format        string `json:"format"`
	Vertices      int    `json:"vertices"`
	Faces         int    `json:"faces"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// ConvertResult is the mesh after STL conversion.
type ConvertResult struct {
	ObjectKey string  `json:"object_key"`
	Vertices  int     `json:"vertices"`
	Faces     int     `json:"faces"`
	VolumeCm3 float64 `json:"volume_cm3"`
}

// MeshClient talks to the reconstruction and conversion services. With
// no base URL configured it returns deterministic placeholder meshes.
type MeshClient struct {
	reconstructURL    string
	convertURL        string
	defaultClient     *http.Client
	reconstructClient *http.Client
}

// NewMeshClient creates a new mesh client.
func NewMeshClient(reconstructURL, convertURL string) *MeshClient {
	return &MeshClient{
		reconstructURL: reconstructURL,
		convertURL:     convertURL,
		defaultClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		reconstructClient: &http.Client{
			Timeout: ReconstructTimeout,
		},
	}
}

// Reconstruct builds a 3D model from the project's concept images.
func (c *MeshClient) Reconstruct(ctx context.Context, projectID string, imageURLs []string) (*ReconstructResult, error) {
	logger := NewLogger(ctx)

	if c.reconstructURL == "" {
		logger.LogInfof("reconstruct", "no upstream configured, returning placeholder mesh for project_id=%s", projectID)
		return placeholderModel(projectID), nil
	}

	var out ReconstructResult
	err := c.postJSON(ctx, c.reconstructClient, c.reconstructURL+"/v1/reconstruct", map[string]any{
		"project_id": projectID,
		"images":     imageURLs,
	}, &out)
	if err != nil {
		logger.LogError("reconstruct", err)
		return nil, err
	}
	return &out, nil
}

// ConvertToSTL converts a reconstructed model to a printable STL file.
func (c *MeshClient) ConvertToSTL(ctx context.Context, projectID, objectKey string) (*ConvertResult, error) {
	logger := NewLogger(ctx)

	if c.convertURL == "" {
		logger.LogInfof("convert_stl", "no upstream configured, returning placeholder mesh for project_id=%s", projectID)
		return placeholderSTL(projectID), nil
	}

	var out ConvertResult
	err := c.postJSON(ctx, c.defaultClient, c.convertURL+"/v1/convert", map[string]any{
		"project_id": projectID,
		"object_key": objectKey,
		"format":     "stl",
	}, &out)
	if err != nil {
		logger.LogError("convert_stl", err)
		return nil, err
	}
	return &out, nil
}

func (c *MeshClient) postJSON(ctx context.Context, client *http.Client, reqURL string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d after %s", resp.StatusCode, time.Since(start))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}

// Placeholder meshes are derived from the project ID so repeated calls
// for the same project return identical stats.
func placeholderModel(projectID string) *ReconstructResult {
	seed := hashID(projectID)
	vertices := 20000 + int(seed%60000)
	return &ReconstructResult{
		ObjectKey:     "models/" + projectID + ".glb",
		Format:        "glb",
		Vertices:      vertices,
		Faces:         vertices * 2,
		FileSizeBytes: int64(vertices) * 36,
	}
}

func placeholderSTL(projectID string) *ConvertResult {
	seed := hashID(projectID)
	faces := 1000 + int(seed%40000)
	return &ConvertResult{
		ObjectKey: "prints/" + projectID + ".stl",
		Vertices:  faces / 2,
		Faces:     faces,
		VolumeCm3: 5 + float64(seed%400),
	}
}

func hashID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}

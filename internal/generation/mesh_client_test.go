package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct_PlaceholderDeterministic(t *testing.T) {
	client := NewMeshClient("", "")
	ctx := context.Background()

	first, err := client.Reconstruct(ctx, "proj-1", nil)
	require.NoError(t, err)
	second, err := client.Reconstruct(ctx, "proj-1", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "glb", first.Format)
	assert.Equal(t, "models/proj-1.glb", first.ObjectKey)
	assert.Greater(t, first.Vertices, 0)
	assert.Greater(t, first.FileSizeBytes, int64(0))
}

func TestReconstruct_DifferentProjectsDiffer(t *testing.T) {
	client := NewMeshClient("", "")
	ctx := context.Background()

	a, err := client.Reconstruct(ctx, "proj-a", nil)
	require.NoError(t, err)
	b, err := client.Reconstruct(ctx, "proj-b", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.ObjectKey, b.ObjectKey)
}

func TestConvertToSTL_Placeholder(t *testing.T) {
	client := NewMeshClient("", "")

	result, err := client.ConvertToSTL(context.Background(), "proj-1", "models/proj-1.glb")
	require.NoError(t, err)
	assert.Equal(t, "prints/proj-1.stl", result.ObjectKey)
	assert.Greater(t, result.Faces, 0)
	assert.Greater(t, result.VolumeCm3, 0.0)
}

func TestReconstruct_Upstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reconstruct", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ReconstructResult{
			ObjectKey:     "models/proj-1.glb",
			Format:        "glb",
			Vertices:      12345,
			Faces:         24690,
			FileSizeBytes: 444420,
		})
	}))
	defer srv.Close()

	client := NewMeshClient(srv.URL, "")
	result, err := client.Reconstruct(context.Background(), "proj-1", []string{"https://cdn.example.com/front.png"})
	require.NoError(t, err)
	assert.Equal(t, 12345, result.Vertices)
}

func TestConvertToSTL_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewMeshClient("", srv.URL)
	_, err := client.ConvertToSTL(context.Background(), "proj-1", "models/proj-1.glb")
	assert.Error(t, err)
}

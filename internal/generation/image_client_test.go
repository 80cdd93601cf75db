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

func TestGenerateConcepts_Placeholder(t *testing.T) {
	client := NewImageClient("")

	images, err := client.GenerateConcepts(context.Background(), "proj-1", "a travel mug")
	require.NoError(t, err)
	require.Len(t, images, 4)

	angles := []string{}
	for _, img := range images {
		angles = append(angles, img.Angle)
		assert.NotEmpty(t, img.ImageURL)
	}
	assert.Equal(t, []string{"front", "side", "top", "perspective"}, angles)
}

func TestGenerateConcepts_Upstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/concepts", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "proj-1", req["project_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"concepts": []ConceptImage{
				{Angle: "front", ImageURL: "https://cdn.example.com/front.png"},
			},
		})
	}))
	defer srv.Close()

	client := NewImageClient(srv.URL)
	images, err := client.GenerateConcepts(context.Background(), "proj-1", "a travel mug")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "https://cdn.example.com/front.png", images[0].ImageURL)
}

func TestGenerateConcepts_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewImageClient(srv.URL)
	_, err := client.GenerateConcepts(context.Background(), "proj-1", "a travel mug")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

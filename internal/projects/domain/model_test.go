package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NetanelBaruch/Moddo/internal/feedback"
)

func TestFeedbackEntry_ParametersOmittedWhenAbsent(t *testing.T) {
	entry := FeedbackEntry{
		Text:      "nice concept",
		Type:      feedback.TypeComment,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "parameters")
}

func TestFeedbackEntry_ParametersSerializedWhenPresent(t *testing.T) {
	entry := FeedbackEntry{
		Text: "make it bigger",
		Type: feedback.TypeRefinement,
		Parameters: &feedback.Parameters{
			SizeAdjustment: feedback.SizeLarger,
		},
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	params, ok := decoded["parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "larger", params["size_adjustment"])
	// Unpopulated fields stay out of the payload entirely.
	assert.NotContains(t, params, "material_change")
	assert.NotContains(t, params, "functional_changes")
}

package printability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckModel_Clean(t *testing.T) {
	report := CheckModel(ModelStats{Vertices: 50000, FileSizeBytes: 1000000})

	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
	assert.Equal(t, []string{
		"Model appears print-ready",
		"Recommended layer height: 0.2mm",
		"Supports may be needed for overhangs",
	}, report.Recommendations)
}

func TestCheckModel_HighVertexCount(t *testing.T) {
	report := CheckModel(ModelStats{Vertices: 150000, FileSizeBytes: 1000000})

	assert.False(t, report.Passed)
	assert.Equal(t, []string{"High vertex count may slow printing"}, report.Issues)
	assert.Equal(t, []string{"Consider reducing model complexity"}, report.Recommendations)
}

func TestCheckModel_LargeFile(t *testing.T) {
	report := CheckModel(ModelStats{Vertices: 1000, FileSizeBytes: 11 * 1024 * 1024})

	assert.False(t, report.Passed)
	assert.Equal(t, []string{"Large file size may indicate excessive detail"}, report.Issues)
}

func TestCheckModel_BothRulesTrigger(t *testing.T) {
	report := CheckModel(ModelStats{Vertices: 200000, FileSizeBytes: 20 * 1024 * 1024})

	assert.False(t, report.Passed)
	// Rule declaration order is preserved.
	assert.Equal(t, []string{
		"High vertex count may slow printing",
		"Large file size may indicate excessive detail",
	}, report.Issues)
	assert.Equal(t, []string{
		"Consider reducing model complexity",
		"Optimize mesh for 3D printing",
	}, report.Recommendations)
}

func TestCheckModel_BoundaryValues(t *testing.T) {
	// Thresholds are strict greater-than.
	report := CheckModel(ModelStats{Vertices: 100000, FileSizeBytes: 10 * 1024 * 1024})
	assert.True(t, report.Passed)
}

func TestCheckMesh_Clean(t *testing.T) {
	report := CheckMesh(MeshStats{Vertices: 5000, Faces: 9000, VolumeCm3: 125})

	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
	assert.Equal(t, []string{
		"Model appears optimized for 3D printing",
		"Recommended infill: 15-20%",
		"Recommended layer height: 0.2mm",
		"Consider orientation to minimize supports",
	}, report.Recommendations)
}

func TestCheckMesh_TooSmall(t *testing.T) {
	report := CheckMesh(MeshStats{Vertices: 5000, Faces: 200, VolumeCm3: 0.5})

	assert.False(t, report.Passed)
	// faces=200 is within range, so only the volume rule fires.
	assert.Equal(t, []string{"Model may be too small for reliable printing"}, report.Issues)
	assert.Equal(t, []string{"Consider scaling up the model"}, report.Recommendations)
}

func TestCheckMesh_TooLarge(t *testing.T) {
	report := CheckMesh(MeshStats{Vertices: 5000, Faces: 200, VolumeCm3: 1500})

	assert.False(t, report.Passed)
	assert.Equal(t, []string{"Model may be too large for some 3D printers"}, report.Issues)
}

func TestCheckMesh_FaceCountRules(t *testing.T) {
	tests := []struct {
		name  string
		faces int
		issue string
	}{
		{"high face count", 60000, "High face count may cause slicer performance issues"},
		{"low face count", 50, "Low face count may result in blocky appearance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CheckMesh(MeshStats{Vertices: 100, Faces: tt.faces, VolumeCm3: 10})
			assert.False(t, report.Passed)
			assert.Equal(t, []string{tt.issue}, report.Issues)
		})
	}
}

func TestCheckMesh_MultipleIssues(t *testing.T) {
	report := CheckMesh(MeshStats{Vertices: 10, Faces: 50, VolumeCm3: 0.2})

	assert.False(t, report.Passed)
	assert.Equal(t, []string{
		"Model may be too small for reliable printing",
		"Low face count may result in blocky appearance",
	}, report.Issues)
}

func TestCheckMesh_NegativeInputsAccepted(t *testing.T) {
	// No validation of physical plausibility; rules still apply.
	report := CheckMesh(MeshStats{Vertices: -1, Faces: -5, VolumeCm3: -2})
	assert.False(t, report.Passed)
	assert.Contains(t, report.Issues, "Model may be too small for reliable printing")
	assert.Contains(t, report.Issues, "Low face count may result in blocky appearance")
}

func TestEvaluate_Idempotent(t *testing.T) {
	stats := MeshStats{Vertices: 5000, Faces: 200, VolumeCm3: 0.5}
	assert.Equal(t, CheckMesh(stats), CheckMesh(stats))
}

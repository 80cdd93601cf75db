package printability

// ModelStats summarizes the mesh returned by 3D reconstruction.
type ModelStats struct {
	Vertices      int   `json:"vertices"`
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// MeshStats summarizes the mesh after STL conversion.
type MeshStats struct {
	Vertices  int     `json:"vertices"`
	Faces     int     `json:"faces"`
	VolumeCm3 float64 `json:"volume_cm3"`
}

const maxModelFileSize = 10 * 1024 * 1024

var modelRules = []Rule[ModelStats]{
	{
		Check:          func(s ModelStats) bool { return s.Vertices > 100000 },
		Issue:          "High vertex count may slow printing",
		Recommendation: "Consider reducing model complexity",
	},
	{
		Check:          func(s ModelStats) bool { return s.FileSizeBytes > maxModelFileSize },
		Issue:          "Large file size may indicate excessive detail",
		Recommendation: "Optimize mesh for 3D printing",
	},
}

var modelDefaults = []string{
	"Model appears print-ready",
	"Recommended layer height: 0.2mm",
	"Supports may be needed for overhangs",
}

var meshRules = []Rule[MeshStats]{
	{
		Check:          func(s MeshStats) bool { return s.VolumeCm3 < 1 },
		Issue:          "Model may be too small for reliable printing",
		Recommendation: "Consider scaling up the model",
	},
	{
		Check:          func(s MeshStats) bool { return s.VolumeCm3 > 1000 },
		Issue:          "Model may be too large for some 3D printers",
		Recommendation: "Consider scaling down or printing in parts",
	},
	{
		Check:          func(s MeshStats) bool { return s.Faces > 50000 },
		Issue:          "High face count may cause slicer performance issues",
		Recommendation: "Consider mesh decimation to reduce complexity",
	},
	{
		Check:          func(s MeshStats) bool { return s.Faces < 100 },
		Issue:          "Low face count may result in blocky appearance",
		Recommendation: "Consider increasing mesh resolution",
	},
}

var meshDefaults = []string{
	"Model appears optimized for 3D printing",
	"Recommended infill: 15-20%",
	"Recommended layer height: 0.2mm",
	"Consider orientation to minimize supports",
}

// CheckModel analyzes the reconstructed model before STL conversion.
func CheckModel(stats ModelStats) Report {
	return Evaluate(stats, modelRules, modelDefaults)
}

// CheckMesh analyzes the converted STL mesh.
func CheckMesh(stats MeshStats) Report {
	return Evaluate(stats, meshRules, meshDefaults)
}

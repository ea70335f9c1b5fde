package render3d

// WorldVertices translates a flat local vertex list into world space.
// Component i is offset by translation[i%3]; the input is not modified.
func WorldVertices(local []float64, translation [3]float64) []float64 {
	out := make([]float64, len(local))
	for i, v := range local {
		out[i] = v + translation[i%3]
	}
	return out
}

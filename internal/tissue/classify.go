package tissue

import "image"

// Classify guesses a tissue class from the average color of a scan image.
// A nil or empty image resolves to the Unknown fallback. The rule is a
// static heuristic: dark saturated red reads as liver, bright reddish as
// intestine, bright near-gray as bone.
func Classify(img image.Image) string {
	if img == nil {
		return FallbackName
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return FallbackName
	}

	var r, g, b float64
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += float64(cr >> 8)
			g += float64(cg >> 8)
			b += float64(cb >> 8)
			n++
		}
	}

	r /= float64(n)
	g /= float64(n)
	b /= float64(n)
	mean := (r + g + b) / 3.0

	switch {
	case r > g*1.5 && r > b*1.5 && mean < 100:
		return "Liver"
	case r > g && r > b && mean > 100:
		return "Intestine"
	case mean > 150 && maxChannel(r, g, b)-minChannel(r, g, b) < 30:
		return "Bone"
	}
	return FallbackName
}

// Resolve applies a manual tissue override to a classifier detection.
// An empty or "auto" override keeps the detected name.
func Resolve(detected, override string) string {
	if override == "" || override == "auto" {
		return detected
	}
	return override
}

func maxChannel(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minChannel(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

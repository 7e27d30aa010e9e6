package tissue

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		fill color.RGBA
		want string
	}{
		{"dark saturated red", color.RGBA{120, 20, 20, 255}, "Liver"},
		{"bright reddish", color.RGBA{200, 120, 100, 255}, "Intestine"},
		{"bright near-gray", color.RGBA{200, 200, 200, 255}, "Bone"},
		{"blue", color.RGBA{20, 20, 200, 255}, FallbackName},
		{"dark gray", color.RGBA{40, 40, 40, 255}, FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(solidImage(tt.fill)); got != tt.want {
				t.Fatalf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyNilImage(t *testing.T) {
	if got := Classify(nil); got != FallbackName {
		t.Fatalf("Classify(nil) = %q, want %q", got, FallbackName)
	}
}

func TestClassifyEmptyImage(t *testing.T) {
	if got := Classify(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != FallbackName {
		t.Fatalf("Classify(empty) = %q, want %q", got, FallbackName)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		detected string
		override string
		want     string
	}{
		{"Liver", "", "Liver"},
		{"Liver", "auto", "Liver"},
		{"Liver", "Bone", "Bone"},
		{FallbackName, "Intestine", "Intestine"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.detected, tt.override); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.detected, tt.override, got, tt.want)
		}
	}
}

package card

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/somgarh/campaign-backend/internal/model"
)

func sampleCard() *model.BeneficiaryCard {
	return &model.BeneficiaryCard{
		ID:         1,
		UniqueID:   "123-456-789-012",
		Name:       "Ram Kumar",
		FatherName: "Shyam Kumar",
		WardNo:     "7",
		Village:    "Somgarh",
		Mobile:     "9876543210",
	}
}

func TestRenderFrontDimensions(t *testing.T) {
	r := NewRenderer("")

	front, err := r.RenderFront(sampleCard(), nil)
	if err != nil {
		t.Fatalf("RenderFront: %v", err)
	}

	b := front.Bounds()
	if b.Dx() != PanelWidth || b.Dy() != PanelHeight {
		t.Errorf("front panel is %dx%d, want %dx%d", b.Dx(), b.Dy(), PanelWidth, PanelHeight)
	}
}

func TestRenderFrontWithPhoto(t *testing.T) {
	r := NewRenderer("")
	photo := image.NewRGBA(image.Rect(0, 0, 100, 120))

	front, err := r.RenderFront(sampleCard(), photo)
	if err != nil {
		t.Fatalf("RenderFront: %v", err)
	}
	if front.Bounds().Dx() != PanelWidth {
		t.Errorf("unexpected width %d", front.Bounds().Dx())
	}
}

func TestComposePNG(t *testing.T) {
	r := NewRenderer("")

	front, err := r.RenderFront(sampleCard(), nil)
	if err != nil {
		t.Fatalf("RenderFront: %v", err)
	}
	back, err := r.RenderBack()
	if err != nil {
		t.Fatalf("RenderBack: %v", err)
	}

	data, err := ComposePNG(front, back)
	if err != nil {
		t.Fatalf("ComposePNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != PanelWidth || b.Dy() != PanelHeight*2 {
		t.Errorf("stacked image is %dx%d, want %dx%d", b.Dx(), b.Dy(), PanelWidth, PanelHeight*2)
	}
}

func TestComposePDF(t *testing.T) {
	r := NewRenderer("")

	front, err := r.RenderFront(sampleCard(), nil)
	if err != nil {
		t.Fatalf("RenderFront: %v", err)
	}
	back, err := r.RenderBack()
	if err != nil {
		t.Fatalf("RenderBack: %v", err)
	}

	data, err := ComposePDF(front, back)
	if err != nil {
		t.Fatalf("ComposePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic")
	}
}

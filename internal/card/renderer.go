// Package card renders beneficiary ID cards as raster images and PDFs.
// Panels use ISO/IEC 7810 ID-1 proportions (85.6mm × 53.98mm) at a 3×
// raster scale of the 352×224 design size. All colors are plain RGB.
package card

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/somgarh/campaign-backend/internal/model"
)

// Panel raster dimensions: 352×224 design pixels at 3× scale.
const (
	PanelWidth  = 1056
	PanelHeight = 672
)

// Campaign copy printed on the panels.
const (
	candidateName  = "Abhishek Sarraf"
	candidateRole  = "Mukhiya Pratyashi"
	cardTitle      = "Gram Panchayat Raj Somgarh"
	cardSubtitle   = "Beneficiary Membership Card"
	backHeading    = "Vote for Vikas"
	backSlogan     = "\"Hamara Sapna, Bihar ka No.1 Panchayat ho Apna\""
	backPromise    = "This card guarantees that our win is the win of all the people. I will complete my 15+ resolved works as soon as possible."
	backReturnNote = "Note: If this card is lost or found, please return it to Abhishek Sarraf's office, Samhauta, West Champaran, 845449."
)

// Palette (hex RGB only; see package comment).
const (
	colorWhite   = "#ffffff"
	colorOrange  = "#f97316"
	colorGreen   = "#22c55e"
	colorGray300 = "#d1d5db"
	colorGray600 = "#4b5563"
	colorGray700 = "#374151"
	colorGray800 = "#1f2937"
)

// Renderer draws card panels. A TTF font path is optional; without one the
// context's built-in face is used.
type Renderer struct {
	fontPath string
}

// NewRenderer creates a Renderer. fontPath may be empty.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// setFont switches the drawing face to the given point size. With no
// configured font the call is a no-op and the default face stays active.
func (r *Renderer) setFont(dc *gg.Context, points float64) {
	if r.fontPath == "" {
		return
	}
	// A load failure leaves the current face in place; the card still renders.
	_ = dc.LoadFontFace(r.fontPath, points)
}

// RenderFront draws the identity panel: photo, holder fields, unique ID and
// the candidate block. photo may be nil, in which case a placeholder is drawn.
func (r *Renderer) RenderFront(c *model.BeneficiaryCard, photo image.Image) (image.Image, error) {
	dc := gg.NewContext(PanelWidth, PanelHeight)

	dc.SetHexColor(colorWhite)
	dc.Clear()

	// Tricolor top band.
	dc.SetHexColor(colorOrange)
	dc.DrawRectangle(0, 0, PanelWidth, 18)
	dc.Fill()
	dc.SetHexColor(colorGreen)
	dc.DrawRectangle(0, PanelHeight-18, PanelWidth, 18)
	dc.Fill()

	// Header.
	r.setFont(dc, 42)
	dc.SetHexColor(colorGray800)
	dc.DrawStringAnchored(cardTitle, PanelWidth/2, 70, 0.5, 0.5)
	r.setFont(dc, 30)
	dc.SetHexColor(colorOrange)
	dc.DrawStringAnchored(cardSubtitle, PanelWidth/2, 120, 0.5, 0.5)

	// Photo frame.
	const (
		photoX = 60
		photoY = 180
		photoW = 264
		photoH = 312
	)
	dc.SetHexColor(colorGray300)
	dc.DrawRoundedRectangle(photoX-6, photoY-6, photoW+12, photoH+12, 16)
	dc.Fill()
	if photo != nil {
		dc.Push()
		dc.DrawRoundedRectangle(photoX, photoY, photoW, photoH, 12)
		dc.Clip()
		dc.Translate(photoX, photoY)
		dc.Scale(photoW/float64(photo.Bounds().Dx()), photoH/float64(photo.Bounds().Dy()))
		dc.DrawImage(photo, 0, 0)
		dc.ResetClip()
		dc.Pop()
	} else {
		dc.SetHexColor(colorWhite)
		dc.DrawRoundedRectangle(photoX, photoY, photoW, photoH, 12)
		dc.Fill()
		r.setFont(dc, 24)
		dc.SetHexColor(colorGray600)
		dc.DrawStringAnchored("PHOTO", photoX+photoW/2, photoY+photoH/2, 0.5, 0.5)
	}

	// Holder fields.
	fieldX := float64(photoX + photoW + 48)
	fieldY := 210.0
	line := func(label, value string) {
		if value == "" {
			return
		}
		r.setFont(dc, 22)
		dc.SetHexColor(colorGray600)
		dc.DrawString(label, fieldX, fieldY)
		r.setFont(dc, 30)
		dc.SetHexColor(colorGray800)
		dc.DrawString(value, fieldX, fieldY+38)
		fieldY += 92
	}
	line("Name", c.Name)
	line("Father's Name", c.FatherName)
	line("Ward / Village", fmt.Sprintf("Ward %s, %s", c.WardNo, c.Village))
	line("Mobile", c.Mobile)

	// Unique ID, bottom left.
	r.setFont(dc, 22)
	dc.SetHexColor(colorGray600)
	dc.DrawString("Card No.", photoX, PanelHeight-110)
	r.setFont(dc, 40)
	dc.SetHexColor(colorOrange)
	dc.DrawString(c.UniqueID, photoX, PanelHeight-62)

	// Candidate block, bottom right.
	r.setFont(dc, 28)
	dc.SetHexColor(colorGray800)
	dc.DrawStringAnchored(candidateName, PanelWidth-70, PanelHeight-100, 1, 0.5)
	r.setFont(dc, 22)
	dc.SetHexColor(colorGray600)
	dc.DrawStringAnchored(candidateRole, PanelWidth-70, PanelHeight-66, 1, 0.5)

	return dc.Image(), nil
}

// RenderBack draws the static campaign panel.
func (r *Renderer) RenderBack() (image.Image, error) {
	dc := gg.NewContext(PanelWidth, PanelHeight)

	dc.SetHexColor(colorWhite)
	dc.Clear()

	// Tricolor diagonal accents, flattened to side bands.
	dc.SetHexColor(colorGreen)
	dc.DrawRectangle(0, 0, 24, PanelHeight)
	dc.Fill()
	dc.SetHexColor(colorOrange)
	dc.DrawRectangle(PanelWidth-24, 0, 24, PanelHeight)
	dc.Fill()

	r.setFont(dc, 46)
	dc.SetHexColor(colorGray800)
	dc.DrawStringAnchored(backHeading, PanelWidth/2, 130, 0.5, 0.5)

	r.setFont(dc, 28)
	dc.SetHexColor(colorGray700)
	dc.DrawStringWrapped(backSlogan, PanelWidth/2, 220, 0.5, 0.5, PanelWidth-200, 1.5, gg.AlignCenter)

	r.setFont(dc, 24)
	dc.SetHexColor(colorGray800)
	dc.DrawStringWrapped(backPromise, PanelWidth/2, 360, 0.5, 0.5, PanelWidth-200, 1.5, gg.AlignCenter)

	r.setFont(dc, 20)
	dc.SetHexColor(colorGray600)
	dc.DrawStringWrapped(backReturnNote, PanelWidth/2, 520, 0.5, 0.5, PanelWidth-200, 1.5, gg.AlignCenter)

	return dc.Image(), nil
}

// ComposePNG stacks front above back into a single PNG.
func ComposePNG(front, back image.Image) ([]byte, error) {
	dc := gg.NewContext(PanelWidth, PanelHeight*2)
	dc.SetHexColor(colorWhite)
	dc.Clear()
	dc.DrawImage(front, 0, 0)
	dc.DrawImage(back, 0, PanelHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode card png: %w", err)
	}
	return buf.Bytes(), nil
}

package card

import (
	"fmt"
	"image"

	"github.com/signintech/gopdf"
)

// Print dimensions in millimetres. ID-1 size plus a 0.265mm bleed on each
// edge so the panel reaches the trim line.
const (
	pageWidthMM  = 86.13
	pageHeightMM = 54.51
)

// ComposePDF writes front and back panels to a two-page PDF at print size.
func ComposePDF(front, back image.Image) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pageSize := gopdf.Rect{W: pageWidthMM, H: pageHeightMM}
	pdf.Start(gopdf.Config{PageSize: pageSize, Unit: gopdf.UnitMM})

	for _, panel := range []image.Image{front, back} {
		pdf.AddPage()
		if err := pdf.ImageFrom(panel, 0, 0, &pageSize); err != nil {
			return nil, fmt.Errorf("place card panel: %w", err)
		}
	}

	out, err := pdf.GetBytesPdfReturnErr()
	if err != nil {
		return nil, fmt.Errorf("encode card pdf: %w", err)
	}
	return out, nil
}

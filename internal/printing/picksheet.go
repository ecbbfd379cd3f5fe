package printing

import (
	"bytes"
	"fmt"

	"go-warehouse-ws/internal/model"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GeneratePickSheet renders a picklist as a printable A4 PDF. Each line
// carries a QR code so pick stations can scan the item instead of typing
// its id.
func GeneratePickSheet(picklist *model.Picklist, items []model.PicklistItemView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Picklist #%d", picklist.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Warehouse: %s    Priority: %s    Status: %s",
		picklist.Warehouse, picklist.Priority, picklist.Status), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Orders: %d    Created: %s",
		len(picklist.OrderIDs), picklist.CreatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Column headers
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(10, 7, "Seq", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "SKU", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Zone", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Rack", "1", 0, "L", false, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Scan", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range items {
		y := pdf.GetY()

		// QR content identifies the pick line
		qrContent := fmt.Sprintf("PL/%d/%d", picklist.ID, item.ID)
		qrPng, err := qrcode.Encode(qrContent, qrcode.Low, 128)
		if err != nil {
			return nil, err
		}

		imgName := fmt.Sprintf("qr_%d", item.ID)
		imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader(imgName, imgOptions, bytes.NewReader(qrPng))

		rowH := 18.0
		pdf.CellFormat(10, rowH, fmt.Sprintf("%d", item.PickSequence), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, rowH, item.SkuCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, rowH, item.SkuName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, rowH, item.Zone, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, rowH, item.Rack, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, rowH, fmt.Sprintf("%d", item.RequiredQty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, rowH, "", "1", 1, "C", false, 0, "")

		qrSize := rowH - 3
		pdf.ImageOptions(imgName, 15+10+30+55+20+25+15+(25-qrSize)/2, y+1.5, qrSize, qrSize, false, imgOptions, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

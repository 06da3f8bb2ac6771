// Package pdf renders contract documents to local PDF files.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portssvc "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/services"
)

const dateLayout = "2006-01-02"

// Generator writes contract PDFs into a local directory and returns the
// file path as the artifact reference.
type Generator struct {
	outputDir string
}

// NewGenerator creates a Generator writing into outputDir. The directory is
// created on first use if it does not exist.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

var _ portssvc.ContractDocumentGenerator = (*Generator)(nil)

// GenerateContractDocument renders the contract into a PDF named after the
// contract ID and returns its path.
func (g *Generator) GenerateContractDocument(_ context.Context, contract domain.Contract, client domain.Client) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating contracts directory: %w", err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(contract.Title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 9, contract.Title, "", "C", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, fmt.Sprintf("Client: %s <%s>", client.Name, client.Email), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s",
		contract.StartDate.Format(dateLayout), contract.EndDate.Format(dateLayout)), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 5, contract.Content, "", "L", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, "Terms", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for i, term := range contract.Terms {
		doc.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, term), "", "L", false)
	}
	doc.Ln(8)

	doc.SetFont("Helvetica", "I", 9)
	doc.CellFormat(0, 6, "Signature: ____________________________", "", 1, "L", false, 0, "")

	path := filepath.Join(g.outputDir, fmt.Sprintf("contract-%s.pdf", contract.ContractID))
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing contract pdf: %w", err)
	}
	return path, nil
}

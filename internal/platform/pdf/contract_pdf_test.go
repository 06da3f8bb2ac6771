package pdf_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/platform/pdf"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContractDocument_WritesFile(t *testing.T) {
	dir := t.TempDir()
	gen := pdf.NewGenerator(dir)

	contract := domain.Contract{
		ContractID: uuid.NewString(),
		ClientID:   uuid.NewString(),
		Title:      "Website development agreement",
		Content:    "The contractor agrees to deliver the work described herein.",
		Terms:      []string{"50% upfront", "Net 15 on delivery"},
		Status:     domain.ContractDraft,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 6, 0),
	}
	client := domain.Client{Name: "Acme Industries", Email: "billing@acme.com"}

	path, err := gen.GenerateContractDocument(context.Background(), contract, client)

	require.NoError(t, err)
	assert.Contains(t, path, contract.ContractID)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateContractDocument_CreatesMissingDir(t *testing.T) {
	dir := t.TempDir() + "/nested/contracts"
	gen := pdf.NewGenerator(dir)

	contract := domain.Contract{
		ContractID: uuid.NewString(),
		Title:      "Website development agreement",
		Content:    "Short form agreement.",
		Terms:      []string{"Net 30"},
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 1, 0),
	}

	path, err := gen.GenerateContractDocument(context.Background(), contract, domain.Client{Name: "Acme"})

	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

package service

import (
	"context"
	"net/url"
)

// ReceiptServiceInterface defines the contract for printable bill generation
type ReceiptServiceInterface interface {
	GeneratePDF(ctx context.Context, stateQuery url.Values) ([]byte, error)
}

// Ensure ReceiptService implements ReceiptServiceInterface
var _ ReceiptServiceInterface = (*ReceiptService)(nil)

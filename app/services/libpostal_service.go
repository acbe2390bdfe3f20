//go:build libpostal

package services

import (
	"context"
	"strings"

	"github.com/address-parser/usaddress/address"
	"github.com/address-parser/usaddress/internal/external"
	"go.uber.org/zap"
)

// ParseWithLibpostal lets libpostal split raw into fields and parses
// those fields. Text libpostal cannot label falls back to free-text
// parsing.
func (as *AddressService) ParseWithLibpostal(ctx context.Context, raw string) (*address.Address, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, address.ErrNoInput
	}

	fields := external.FieldsFromLibpostal(raw)
	if fields.Street == "" && fields.City == "" && fields.PostalCode == "" {
		as.logger.Debug("libpostal found no components, parsing as text", zap.String("address", raw))
		return as.Parse(ctx, address.Text(raw))
	}
	return as.Parse(ctx, fields)
}

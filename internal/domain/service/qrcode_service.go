package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for party invite QR generation and parsing.
type QRCodeService interface {
	// GeneratePartyInviteQR generates a QR code PNG embedding the party deep link.
	GeneratePartyInviteQR(partyID uuid.UUID) ([]byte, error)

	// ParsePartyInviteQR parses scanned QR data and returns the party ID.
	ParsePartyInviteQR(qrData string) (uuid.UUID, error)
}

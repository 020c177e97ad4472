package handler

import (
	"log/slog"
	"net/http"

	"gametable/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QRHandler serves party invite QR codes as PNG images
type QRHandler struct {
	logger    *slog.Logger
	qrcodeSvc service.QRCodeService
}

// QRHandlerParams holds dependencies for the QRHandler
type QRHandlerParams struct {
	fx.In

	Logger    *slog.Logger
	QRCodeSvc service.QRCodeService
}

// NewQRHandler creates a new party invite QR handler
func NewQRHandler(params QRHandlerParams) *QRHandler {
	return &QRHandler{
		logger:    params.Logger,
		qrcodeSvc: params.QRCodeSvc,
	}
}

// HandleInviteQR renders the invite QR code for a party
func (h *QRHandler) HandleInviteQR(c echo.Context) error {
	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid party id"})
	}

	png, err := h.qrcodeSvc.GeneratePartyInviteQR(partyID)
	if err != nil {
		h.logger.Error("[Worker] Failed to generate invite QR",
			slog.String("party_id", partyID.String()),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

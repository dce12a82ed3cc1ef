package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/model"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
	"github.com/somgarh/campaign-backend/internal/validator"
)

// BeneficiaryHandler handles card self-registration, verification and the
// card artifact downloads.
type BeneficiaryHandler struct {
	beneficiaryService *service.BeneficiaryService
	cardService        *service.CardService
}

// NewBeneficiaryHandler creates a new BeneficiaryHandler.
func NewBeneficiaryHandler(beneficiaryService *service.BeneficiaryService, cardService *service.CardService) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryService: beneficiaryService,
		cardService:        cardService,
	}
}

// Create godoc
// POST /api/beneficiary
// Registers a new card from a multipart form. The "photo" file is required.
// A mobile number that already holds a card yields 409 with the existing
// card in the response body.
func (h *BeneficiaryHandler) Create(c *gin.Context) {
	var req model.CreateBeneficiaryCardRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	file, header, err := openFormFile(c, "photo")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	if file == nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	card, err := h.beneficiaryService.Create(c.Request.Context(), &req, file, header)
	if err != nil {
		var dup *service.DuplicateCardError
		if errors.As(err, &dup) {
			response.FailWithData(c, http.StatusConflict, response.ErrDuplicateCard, dup.Existing)
			return
		}
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Beneficiary card created", card)
}

// Verify godoc
// POST /api/beneficiary/verify
// Looks up a card by holder name and mobile. Name matching is
// case-insensitive and whitespace-tolerant; mobile must match exactly.
func (h *BeneficiaryHandler) Verify(c *gin.Context) {
	var req model.VerifyCardRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	card, err := h.beneficiaryService.Verify(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCardNotFound)
			return
		}
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Card found", card)
}

// List godoc
// GET /api/beneficiary
// Returns all cards, newest first. Admin only.
func (h *BeneficiaryHandler) List(c *gin.Context) {
	cards, err := h.beneficiaryService.GetAll(c.Request.Context())
	if err != nil {
		failFromServiceError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, cards, len(cards))
}

// Delete godoc
// DELETE /api/beneficiary/:id
// Removes a card and its stored photo. The unique ID is never reissued.
func (h *BeneficiaryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.beneficiaryService.Delete(c.Request.Context(), id); err != nil {
		failFromServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Beneficiary card deleted", nil)
}

// lookupForDownload resolves the card addressed by a download URL. The
// mobile query param must match the card, otherwise the card is reported
// as missing rather than hinting that the unique ID exists.
func (h *BeneficiaryHandler) lookupForDownload(c *gin.Context) *model.BeneficiaryCard {
	uniqueID := c.Param("unique_id")
	mobile := c.Query("mobile")
	if uniqueID == "" || mobile == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return nil
	}

	card, err := h.beneficiaryService.GetForDownload(c.Request.Context(), uniqueID, mobile)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCardNotFound)
			return nil
		}
		failFromServiceError(c, err)
		return nil
	}
	return card
}

// DownloadImage godoc
// GET /api/beneficiary/card/:unique_id/image?mobile=...
// Streams the two-panel card as a PNG attachment.
func (h *BeneficiaryHandler) DownloadImage(c *gin.Context) {
	card := h.lookupForDownload(c)
	if card == nil {
		return
	}

	data, err := h.cardService.RenderPNG(c.Request.Context(), card)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=beneficiary-card-%s.png", card.UniqueID))
	c.Data(http.StatusOK, "image/png", data)
}

// DownloadPDF godoc
// GET /api/beneficiary/card/:unique_id/pdf?mobile=...
// Streams the card as a two-page print-size PDF attachment.
func (h *BeneficiaryHandler) DownloadPDF(c *gin.Context) {
	card := h.lookupForDownload(c)
	if card == nil {
		return
	}

	data, err := h.cardService.RenderPDF(c.Request.Context(), card)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=beneficiary-card-%s.pdf", card.UniqueID))
	c.Data(http.StatusOK, "application/pdf", data)
}

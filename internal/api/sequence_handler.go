package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"dnavault.com/internal/domain"
	"dnavault.com/internal/model"
)

type SequenceHandler struct {
	sequences domain.SequenceService
}

func NewSequenceHandler(sequences domain.SequenceService) *SequenceHandler {
	return &SequenceHandler{sequences: sequences}
}

type CreateSequenceRequest struct {
	Sequence    string  `json:"sequence"`
	Description *string `json:"description"`
}

func requester(c *fiber.Ctx) *domain.Requester {
	r, _ := c.Locals("requester").(*domain.Requester)
	return r
}

// Create validates, analyzes and stores a sequence owned by the caller
// POST /sequences
func (h *SequenceHandler) Create(c *fiber.Ctx) error {
	var req CreateSequenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{Success: false, Message: "Invalid request body"})
	}

	created, err := h.sequences.Create(c.Context(), requester(c), req.Sequence, req.Description)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: "Sequence saved successfully.",
		Data:    created,
	})
}

// Import stores every record of a FASTA body, all or nothing
// POST /sequences/import
func (h *SequenceHandler) Import(c *fiber.Ctx) error {
	created, err := h.sequences.ImportFasta(c.Context(), requester(c), bytes.NewReader(c.Body()))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: "Sequences imported successfully.",
		Data:    created,
	})
}

// Search matches an exact numeric id or a substring of sequence/description
// GET /sequences/search?q=
func (h *SequenceHandler) Search(c *fiber.Ctx) error {
	rows, err := h.sequences.Search(c.Context(), requester(c), c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	if rows == nil {
		rows = []model.Sequence{}
	}
	return c.JSON(rows)
}

// ListMine returns the caller's own rows; an empty set is still HTTP 200
// GET /sequences/me
func (h *SequenceHandler) ListMine(c *fiber.Ctx) error {
	rows, err := h.sequences.ListOwn(c.Context(), requester(c))
	if err != nil {
		return handleError(c, err)
	}

	if len(rows) == 0 {
		return c.JSON(Envelope{Success: false, Message: "No sequences found", Data: []model.Sequence{}})
	}
	return c.JSON(Envelope{Success: true, Message: "User sequences fetched successfully", Data: rows})
}

// ListAll returns every row with owner display fields (admin only)
// GET /sequences
func (h *SequenceHandler) ListAll(c *fiber.Ctx) error {
	rows, err := h.sequences.ListAll(c.Context(), requester(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(Envelope{Success: true, Message: "Sequences fetched successfully", Data: rows})
}

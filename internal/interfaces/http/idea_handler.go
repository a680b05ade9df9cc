package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/application/usecase"
	"github.com/gloor0717/a4c-backlog/pkg/logger"
)

// IdeaHandler maneja el backlog de ideas.
type IdeaHandler struct {
	uc  *usecase.IdeaUseCase
	log *logger.Logger
}

// NewIdeaHandler construye el handler de ideas.
func NewIdeaHandler(uc *usecase.IdeaUseCase, log *logger.Logger) *IdeaHandler {
	return &IdeaHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar ideas (más recientes primero)
// @Tags         ideas
// @Produce      json
// @Param        q    query     string  false  "filtro por texto en story"
// @Success      200  {array}   dto.IdeaResponse
// @Router       /ideas [get]
func (h *IdeaHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener idea
// @Tags         ideas
// @Produce      json
// @Param        id   path      int  true  "ID de la idea"
// @Success      200  {object}  dto.IdeaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ideas/{id} [get]
func (h *IdeaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := ideaID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Enviar idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateIdeaRequest  true  "story"
// @Success      201   {object}  dto.IdeaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /ideas [post]
func (h *IdeaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIdeaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar idea (admin)
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "ID de la idea"
// @Param        body  body      dto.UpdateIdeaRequest  true  "campos a modificar"
// @Success      200   {object}  dto.IdeaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ideas/{id} [put]
func (h *IdeaHandler) Update(c *fiber.Ctx) error {
	id, ok := ideaID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateIdeaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.FullUpdate(c.UserContext(), GetRole(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdatePriority godoc
// @Summary      Cambiar prioridad (po, admin)
// @Tags         ideas
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                        true  "ID de la idea"
// @Param        body  body  dto.UpdatePriorityRequest  true  "priority"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ideas/{id}/priority [put]
func (h *IdeaHandler) UpdatePriority(c *fiber.Ctx) error {
	id, ok := ideaID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdatePriorityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdatePriority(c.UserContext(), GetRole(c), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Vote godoc
// @Summary      Votar idea (una vez por usuario)
// @Tags         ideas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "ID de la idea"
// @Success      200  {object}  dto.IdeaResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /ideas/{id}/vote [post]
func (h *IdeaHandler) Vote(c *fiber.Ctx) error {
	id, ok := ideaID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Vote(c.UserContext(), GetRole(c), GetUserID(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar idea (admin)
// @Tags         ideas
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la idea"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ideas/{id} [delete]
func (h *IdeaHandler) Delete(c *fiber.Ctx) error {
	id, ok := ideaID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetRole(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Exportar backlog en PDF (po, admin)
// @Tags         ideas
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /ideas/export.pdf [get]
func (h *IdeaHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportPDF(c.UserContext(), GetRole(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func ideaID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}

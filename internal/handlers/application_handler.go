package handlers

import (
	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	internshipID, err := uuid.Parse(req.InternshipID)
	if err != nil {
		return respond.Error(c, apperr.ErrInvalidID)
	}

	app, err := h.applications.Apply(c.UserContext(), authctx.User(c), internshipID, req.Message, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusCreated, "application.created", dto.ApplicationCreated{
		ID:          app.ID,
		Status:      app.Status,
		SubmittedAt: app.CreatedAt,
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	list, err := h.applications.ListMine(c.UserContext(), authctx.User(c), authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, list)
}

func (h *ApplicationHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := respond.ParamID(c, "studentId")
	if err != nil {
		return respond.Error(c, err)
	}
	out, err := h.applications.ListByStudent(c.UserContext(), authctx.User(c), studentID, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, out)
}

func (h *ApplicationHandler) ListAll(c *fiber.Ctx) error {
	f := dto.ApplicationFilter{
		Status: models.ApplicationStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	if v := c.Query("internshipId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return respond.Error(c, apperr.ErrInvalidID)
		}
		f.InternshipID = &id
	}

	list, err := h.applications.ListAll(c.UserContext(), f, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, list)
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	view, err := h.applications.GetByID(c.UserContext(), authctx.User(c), id, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, view)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req dto.UpdateStatusRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}

	app, err := h.applications.SetStatus(c.UserContext(), authctx.User(c), id, req.Status, authctx.Lang(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "application.status_updated", dto.NewApplicationView(app, authctx.Lang(c), true))
}

func (h *ApplicationHandler) UpdateMessage(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req dto.UpdateMessageRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}

	app, err := h.applications.UpdateMessage(c.UserContext(), authctx.User(c), id, req.Message)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "application.updated", dto.NewApplicationView(app, authctx.Lang(c), false))
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.applications.Delete(c.UserContext(), authctx.User(c), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "application.deleted")
}

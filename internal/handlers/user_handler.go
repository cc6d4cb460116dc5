package handlers

import (
	"github.com/Princeaman007/interships/internal/authctx"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	return respond.OK(c, authctx.User(c))
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	user, err := h.users.UpdateProfile(c.UserContext(), authctx.UserID(c), &req)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "user.updated", user)
}

func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	img, err := formImage(c, "avatar")
	if err != nil {
		return respond.Error(c, err)
	}
	user, err := h.users.SetAvatar(c.UserContext(), authctx.UserID(c), img)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "user.avatar_updated", fiber.Map{"avatarUrl": user.Profile.AvatarURL})
}

func (h *UserHandler) RemoveAvatar(c *fiber.Ctx) error {
	if err := h.users.RemoveAvatar(c.UserContext(), authctx.UserID(c)); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "user.avatar_removed")
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	if err := h.users.ChangePassword(c.UserContext(), authctx.UserID(c), &req); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "user.password_changed")
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, limit := respond.Pagination(c, 10, 100)
	out, err := h.users.List(c.UserContext(), dto.UserFilter{
		Role:   models.Role(c.Query("role")),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, out)
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.users.Stats(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, stats)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, user)
}

func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req dto.UpdateActiveRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	user, err := h.users.SetActive(c.UserContext(), id, *req.IsActive)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "user.status_updated", user)
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req dto.UpdateRoleRequest
	if err := respond.Bind(c, &req); err != nil {
		return respond.Error(c, err)
	}
	user, err := h.users.SetRole(c.UserContext(), id, req.Role)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.MessageData(c, fiber.StatusOK, "user.role_updated", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.users.Delete(c.UserContext(), authctx.User(c), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Message(c, fiber.StatusOK, "user.deleted")
}

package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

type Handler struct {
	orch     *usecase.Orchestrator
	exporter *usecase.Exporter
	log      *slog.Logger
}

func NewHandler(o *usecase.Orchestrator, e *usecase.Exporter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{orch: o, exporter: e, log: log}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/resume", h.GetResume)
	api.Put("/resume", h.ImportResume)
	api.Delete("/resume", h.ResetResume)

	api.Patch("/personal", h.UpdatePersonal)
	api.Post("/personal/picture", h.UploadPicture)

	api.Post("/sections/:section", h.AddEntry)
	api.Patch("/sections/:section/:id", h.UpdateEntry)
	api.Delete("/sections/:section/:id", h.RemoveEntry)

	api.Post("/skills", h.AddSkill)
	api.Put("/skills/:id/level", h.SetSkillLevel)

	api.Get("/templates", h.ListTemplates)
	api.Put("/template", h.SelectTemplate)

	api.Get("/checks", h.Checks)
	api.Post("/export", h.Export)

	app.Get("/preview", h.Preview)
}

type fieldReq struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type skillReq struct {
	Name  string `json:"name"`
	Level *int   `json:"level"`
}

type levelReq struct {
	Level int `json:"level"`
}

type templateReq struct {
	Template string `json:"template"`
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	d, v := h.orch.Snapshot()
	c.Set("X-Resume-Version", fmt.Sprint(v))
	return c.JSON(d)
}

func (h *Handler) ImportResume(c *fiber.Ctx) error {
	d, err := model.DecodeSnapshot(c.Body(), editor.NewID)
	if err != nil {
		return h.fail(c, err)
	}
	res, err := h.orch.Dispatch(c.UserContext(), usecase.ReplaceAll{Data: d})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"version": res.Version})
}

func (h *Handler) ResetResume(c *fiber.Ctx) error {
	if _, err := h.orch.Dispatch(c.UserContext(), usecase.Reset{}); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpdatePersonal(c *fiber.Ctx) error {
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	res, err := h.orch.Dispatch(c.UserContext(), usecase.UpdatePersonal{Field: req.Field, Value: req.Value})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"version": res.Version})
}

func (h *Handler) UploadPicture(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()

	if err := <-h.orch.IngestProfilePicture(c.UserContext(), f); err != nil {
		return h.fail(c, err)
	}
	_, v := h.orch.Snapshot()
	return c.JSON(fiber.Map{"version": v})
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	section, err := domain.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	res, err := h.orch.Dispatch(c.UserContext(), usecase.AddEntry{Section: section})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": res.ID, "version": res.Version})
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	section, err := domain.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id, _ := url.PathUnescape(c.Params("id"))
	res, err := h.orch.Dispatch(c.UserContext(), usecase.UpdateEntry{
		Section: section,
		ID:      id,
		Field:   req.Field,
		Value:   req.Value,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"version": res.Version})
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	section, err := domain.ParseSection(c.Params("section"))
	if err != nil {
		return h.fail(c, err)
	}
	id, _ := url.PathUnescape(c.Params("id"))
	if _, err := h.orch.Dispatch(c.UserContext(), usecase.RemoveEntry{Section: section, ID: id}); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var req skillReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	level := domain.DefaultLevel
	if req.Level != nil {
		level = domain.Level(*req.Level)
	}
	res, err := h.orch.Dispatch(c.UserContext(), usecase.AddSkill{Name: req.Name, Level: level})
	if err != nil {
		return h.fail(c, err)
	}
	if res.ID == "" {
		return badRequest(c, "skill name is empty")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": res.ID, "version": res.Version})
}

func (h *Handler) SetSkillLevel(c *fiber.Ctx) error {
	var req levelReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id, _ := url.PathUnescape(c.Params("id"))
	res, err := h.orch.Dispatch(c.UserContext(), usecase.SetSkillLevel{ID: id, Level: domain.Level(req.Level)})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"version": res.Version})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	selected := h.orch.Template()
	return c.JSON(fiber.Map{
		"templates": render.Templates(),
		"selected":  selected,
		"resolved":  render.Lookup(selected).ID(),
	})
}

func (h *Handler) SelectTemplate(c *fiber.Ctx) error {
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	resolved := h.orch.SelectTemplate(c.UserContext(), domain.TemplateID(req.Template))
	return c.JSON(fiber.Map{"selected": h.orch.Template(), "resolved": resolved})
}

func (h *Handler) Checks(c *fiber.Ctx) error {
	d, _ := h.orch.Snapshot()
	return c.JSON(usecase.CheckPresence(d))
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := h.orch.Preview()
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(doc.HTML)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	if h.exporter == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "export is not configured"})
	}
	doc, err := h.orch.Preview()
	if err != nil {
		return h.fail(c, err)
	}
	d, _ := h.orch.Snapshot()

	res, err := h.exporter.Export(c.UserContext(), doc, d.PersonalInfo.FullName)
	if err != nil {
		return h.fail(c, err)
	}
	if res.PDFErr != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("render failed: %v", res.PDFErr),
			"html":  res.HTMLPath,
		})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.FileName))
	c.Type("pdf")
	return c.Send(res.PDF)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// fail maps domain errors to client errors; anything else is a 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrFieldType),
		errors.Is(err, domain.ErrUnknownSection),
		errors.Is(err, model.ErrInvalidSnapshot):
		status = fiber.StatusBadRequest
	case errors.Is(err, editor.ErrNotImage):
		status = fiber.StatusUnsupportedMediaType
	}
	if status == fiber.StatusInternalServerError {
		h.log.Error("http: request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

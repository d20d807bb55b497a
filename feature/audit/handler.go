package audit

import (
	"errors"
	"strings"

	"stock-audit/core/logger"
	"stock-audit/core/manifest"
	"stock-audit/core/reconcile"
	"stock-audit/core/report"
	"stock-audit/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ModeRequest selects the session mode.
type ModeRequest struct {
	Mode string `json:"mode" example:"audit"`
}

// StorageManifestRequest names a manifest object in the bucket.
type StorageManifestRequest struct {
	Object       string `json:"object" example:"manifests/march.xlsx"`
	SerialColumn string `json:"serial_column,omitempty"`
	PartColumn   string `json:"part_column,omitempty"`
}

// ScanRequest carries one scanned or typed value.
type ScanRequest struct {
	Value string `json:"value" example:"ABC123"`
}

// ExportRequest selects the report encoding.
type ExportRequest struct {
	Format string `json:"format" example:"json"`
}

// ManifestResponse is returned after a manifest (re)load.
type ManifestResponse struct {
	Manifest ManifestInfo       `json:"manifest"`
	Snapshot reconcile.Snapshot `json:"snapshot"`
}

// ScanResponse is returned after an observation.
type ScanResponse struct {
	Outcome  reconcile.Outcome  `json:"outcome"`
	Message  string             `json:"message"`
	Warning  bool               `json:"warning"`
	Snapshot reconcile.Snapshot `json:"snapshot"`
}

// NextResponse carries the consumed missing identifier.
type NextResponse struct {
	ID      string `json:"id"`
	Missing int    `json:"missing"`
}

// Handler handles HTTP requests for the audit session.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleGetSnapshot)
	group.Post("/mode", h.HandleSelectMode)
	group.Get("/manifest", h.HandleGetManifest)
	group.Post("/manifest", h.HandleUploadManifest)
	group.Put("/manifest/columns", h.HandleSelectColumns)
	group.Post("/manifest/storage", h.HandleLoadStoredManifest)
	group.Get("/manifests", h.HandleListManifests)
	group.Post("/scan", h.HandleScan)
	group.Get("/missing", h.HandleGetMissing)
	group.Post("/missing/next", h.HandleNextMissing)
	group.Get("/missing/all", h.HandleAllMissing)
	group.Get("/scanned", h.HandleScanned)
	group.Post("/export", h.HandleExport)
}

// HandleGetSnapshot returns the current session view.
// @Summary Get Session
// @Description Get counters and the scanned, extra and missing lists of the session.
// @Tags audit
// @Produce json
// @Success 200 {object} reconcile.Snapshot "Session Snapshot"
// @Router /audit [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot())
}

// HandleSelectMode resets the session into a mode.
// @Summary Select Mode
// @Description Start a new session in audit or quick capture mode. All session state is cleared.
// @Tags audit
// @Accept json
// @Produce json
// @Param request body ModeRequest true "Mode"
// @Success 200 {object} reconcile.Snapshot "Session Snapshot"
// @Failure 400 {object} map[string]string "Invalid Mode"
// @Router /audit/mode [post]
func (h *Handler) HandleSelectMode(c *fiber.Ctx) error {
	var req ModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	snap, err := h.service.SelectMode(req.Mode)
	if err != nil {
		return h.fail(c, "Mode selection failed", err)
	}
	return c.JSON(snap)
}

// HandleGetManifest describes the loaded manifest.
// @Summary Get Manifest
// @Description Get the headers, selected columns and expected count of the loaded manifest.
// @Tags audit
// @Produce json
// @Success 200 {object} ManifestInfo "Manifest"
// @Failure 409 {object} map[string]string "No Manifest"
// @Router /audit/manifest [get]
func (h *Handler) HandleGetManifest(c *fiber.Ctx) error {
	info, err := h.service.Manifest()
	if err != nil {
		return h.fail(c, "Manifest lookup failed", err)
	}
	return c.JSON(info)
}

// HandleUploadManifest loads an uploaded manifest.
// @Summary Upload Manifest
// @Description Load an XLSX or CSV manifest. Columns are guessed unless given.
// @Tags audit
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Manifest file"
// @Param serial_column formData string false "Serial column"
// @Param part_column formData string false "Part column"
// @Success 200 {object} ManifestResponse "Manifest Loaded"
// @Failure 400 {object} map[string]string "Unknown Column"
// @Failure 409 {object} map[string]string "Not In Audit Mode"
// @Failure 413 {object} map[string]string "File Too Large"
// @Failure 422 {object} map[string]string "Unreadable Manifest"
// @Router /audit/manifest [post]
func (h *Handler) HandleUploadManifest(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing manifest file"})
	}
	if limit := h.service.opts.Manifest.MaxUploadBytes; limit > 0 && fh.Size > limit {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "Manifest file too large"})
	}

	f, err := fh.Open()
	if err != nil {
		return h.fail(c, "Manifest upload unreadable", err)
	}
	defer f.Close()

	cols := manifest.Columns{
		Serial: strings.TrimSpace(c.FormValue("serial_column")),
		Part:   strings.TrimSpace(c.FormValue("part_column")),
	}

	info, err := h.service.LoadManifest(fh.Filename, f, cols)
	if err != nil {
		return h.fail(c, "Manifest load failed", err)
	}
	return c.JSON(ManifestResponse{Manifest: info, Snapshot: h.service.Snapshot()})
}

// HandleSelectColumns reloads the manifest with other columns.
// @Summary Select Columns
// @Description Reload the loaded manifest with a new serial/part column selection. An empty part column means no part.
// @Tags audit
// @Accept json
// @Produce json
// @Param request body manifest.Columns true "Columns"
// @Success 200 {object} ManifestResponse "Manifest Reloaded"
// @Failure 400 {object} map[string]string "Unknown Column"
// @Failure 409 {object} map[string]string "No Manifest"
// @Router /audit/manifest/columns [put]
func (h *Handler) HandleSelectColumns(c *fiber.Ctx) error {
	var cols manifest.Columns
	if err := c.BodyParser(&cols); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	info, err := h.service.SelectColumns(cols)
	if err != nil {
		return h.fail(c, "Column selection failed", err)
	}
	return c.JSON(ManifestResponse{Manifest: info, Snapshot: h.service.Snapshot()})
}

// HandleLoadStoredManifest loads a manifest from the bucket.
// @Summary Load Stored Manifest
// @Description Load an XLSX or CSV manifest stored in the bucket.
// @Tags audit
// @Accept json
// @Produce json
// @Param request body StorageManifestRequest true "Object"
// @Success 200 {object} ManifestResponse "Manifest Loaded"
// @Failure 409 {object} map[string]string "Not In Audit Mode"
// @Failure 422 {object} map[string]string "Unreadable Manifest"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /audit/manifest/storage [post]
func (h *Handler) HandleLoadStoredManifest(c *fiber.Ctx) error {
	var req StorageManifestRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Object) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Object is required"})
	}

	cols := manifest.Columns{Serial: req.SerialColumn, Part: req.PartColumn}
	info, err := h.service.LoadManifestFromStorage(c.Context(), strings.TrimSpace(req.Object), cols)
	if err != nil {
		return h.fail(c, "Stored manifest load failed", err)
	}
	return c.JSON(ManifestResponse{Manifest: info, Snapshot: h.service.Snapshot()})
}

// HandleListManifests lists stored manifests.
// @Summary List Manifests
// @Description List the manifests stored in the bucket.
// @Tags audit
// @Produce json
// @Success 200 {array} storage.Object "Manifests"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /audit/manifests [get]
func (h *Handler) HandleListManifests(c *fiber.Ctx) error {
	objects, err := h.service.ListManifests(c.Context())
	if err != nil {
		return h.fail(c, "Manifest listing failed", err)
	}
	if objects == nil {
		objects = []storage.Object{}
	}
	return c.JSON(objects)
}

// HandleScan observes a scanned or typed value.
// @Summary Scan
// @Description Record one scanned or typed identifier. Blank input is ignored.
// @Tags audit
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Value"
// @Success 200 {object} ScanResponse "Outcome"
// @Success 204 "Blank Input"
// @Router /audit/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	out, snap, ok := h.service.Scan(req.Value)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(ScanResponse{
		Outcome:  out,
		Message:  out.Message(),
		Warning:  out.Warning(),
		Snapshot: snap,
	})
}

// HandleGetMissing returns the missing work queue.
// @Summary Get Missing
// @Description Get the expected identifiers neither scanned nor handled, ordered by part then identifier.
// @Tags audit
// @Produce json
// @Success 200 {array} string "Missing"
// @Router /audit/missing [get]
func (h *Handler) HandleGetMissing(c *fiber.Ctx) error {
	missing := h.service.Missing()
	if missing == nil {
		missing = []string{}
	}
	return c.JSON(missing)
}

// HandleNextMissing consumes the head of the missing queue.
// @Summary Next Missing
// @Description Take the next missing identifier and mark it handled.
// @Tags audit
// @Produce json
// @Success 200 {object} NextResponse "Next Missing"
// @Success 204 "Queue Empty"
// @Router /audit/missing/next [post]
func (h *Handler) HandleNextMissing(c *fiber.Ctx) error {
	id, remaining, ok := h.service.NextMissing()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(NextResponse{ID: id, Missing: remaining})
}

// HandleAllMissing returns the missing queue as text for copying.
// @Summary Copy All Missing
// @Description Get the missing queue, one identifier per line. Nothing is marked handled.
// @Tags audit
// @Produce plain
// @Success 200 {string} string "Missing"
// @Success 204 "Queue Empty"
// @Router /audit/missing/all [get]
func (h *Handler) HandleAllMissing(c *fiber.Ctx) error {
	return sendLines(c, h.service.AllMissing())
}

// HandleScanned returns the scanned identifiers as text for copying.
// @Summary Copy All Scanned
// @Description Get the scanned identifiers, sorted, one per line.
// @Tags audit
// @Produce plain
// @Success 200 {string} string "Scanned"
// @Success 204 "Nothing Scanned"
// @Router /audit/scanned [get]
func (h *Handler) HandleScanned(c *fiber.Ctx) error {
	return sendLines(c, h.service.Scanned())
}

// HandleExport uploads a report of the session.
// @Summary Export Report
// @Description Upload a JSON or YAML report of the session to the bucket and archive it.
// @Tags audit
// @Accept json
// @Produce json
// @Param request body ExportRequest false "Format"
// @Success 201 {object} ExportResult "Exported"
// @Failure 400 {object} map[string]string "Unknown Format"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /audit/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	var req ExportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	result, err := h.service.Export(c.Context(), req.Format)
	if err != nil {
		return h.fail(c, "Report export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, manifest.ErrParse):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, manifest.ErrUnknownColumn),
		errors.Is(err, reconcile.ErrInvalidMode),
		errors.Is(err, report.ErrUnknownFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrNotAuditMode),
		errors.Is(err, ErrNoManifest):
		return fiber.StatusConflict
	case errors.Is(err, storage.ErrTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func sendLines(c *fiber.Ctx, lines []string) error {
	if len(lines) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(strings.Join(lines, "\n"))
}

// Package rest exposes the reports service as the HTTP proxy the dashboard
// calls. Every failure is answered with 500 and {"error": "..."}; the
// upstream status is not passed through.
package rest

import (
	"errors"
	"fmt"

	"github.com/godilite/talentbridge-stats/internal/i18n"
	"github.com/godilite/talentbridge-stats/internal/series"
	"github.com/godilite/talentbridge-stats/internal/stats"
	"github.com/godilite/talentbridge-stats/internal/upstream"
	httpserver "github.com/godilite/talentbridge-stats/pkg/http/server"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	SummaryRoute = "/statistics-summary-proxy"
	ExportRoute  = "/statistics-export-proxy"
	ViewRoute    = "/statistics-view"
	HealthRoute  = "/health"

	msgSummaryFailed = "Failed to fetch statistics"
	msgExportFailed  = "Failed to download report"
)

// Handlers adds no deadline of its own. Upstream calls are bounded by the
// request context and the transport.
type Handlers struct {
	reports ReportsService
	logger  *zap.Logger
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(reports ReportsService, logger *zap.Logger) *Handlers {
	if reports == nil {
		panic("nil ReportsService provided to NewHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		reports: reports,
		logger:  logger.Named("http-handler"),
	}
}

// Register mounts the proxy routes on app.
func (h *Handlers) Register(app *fiber.App) {
	app.Get(SummaryRoute, h.GetSummary)
	app.Get(ExportRoute, h.GetExport)
	app.Get(ViewRoute, h.GetView)
	app.Get(HealthRoute, h.Health)
}

// dateRange reads fromDate/toDate. A range only applies when both are set.
func dateRange(c *fiber.Ctx) (*stats.DateRange, error) {
	return stats.ParseDateRange(c.Query("fromDate"), c.Query("toDate"))
}

func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	r, err := dateRange(c)
	if err != nil {
		return h.fail(c, "GetSummary", err, err.Error())
	}

	ctx := c.UserContext()

	body, err := h.reports.Summary(ctx, r)
	if err != nil {
		return h.fail(c, "GetSummary", err, failureMessage(err, msgSummaryFailed))
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *Handlers) GetExport(c *fiber.Ctx) error {
	r, err := dateRange(c)
	if err != nil {
		return h.fail(c, "GetExport", err, err.Error())
	}

	ctx := c.UserContext()

	export, err := h.reports.Export(ctx, r)
	if err != nil {
		return h.fail(c, "GetExport", err, failureMessage(err, msgExportFailed))
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Status(fiber.StatusOK).Send(export.Data)
}

// GetView returns the derived dashboard for the locale and theme query
// parameters.
func (h *Handlers) GetView(c *fiber.Ctx) error {
	r, err := dateRange(c)
	if err != nil {
		return h.fail(c, "GetView", err, err.Error())
	}
	locale := i18n.ParseLocale(c.Query("locale"))
	theme := series.ParseTheme(c.Query("theme"))

	ctx := c.UserContext()

	v, err := h.reports.View(ctx, r, locale, theme)
	if err != nil {
		return h.fail(c, "GetView", err, failureMessage(err, msgSummaryFailed))
	}

	c.Set(fiber.HeaderContentLanguage, string(locale))
	return c.Status(fiber.StatusOK).JSON(v)
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (h *Handlers) fail(c *fiber.Ctx, op string, err error, msg string) error {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("request_id", httpserver.GetRequestID(c)),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}

// failureMessage prefers the upstream's own error text and otherwise uses
// the fixed message for the route.
func failureMessage(err error, fallback string) string {
	var uerr *upstream.UpstreamError
	if errors.As(err, &uerr) && uerr.Decoded {
		return uerr.Message
	}
	return fallback
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hearthglow/storefront/internal/events"
	"github.com/hearthglow/storefront/internal/logging"
	"github.com/hearthglow/storefront/internal/models"
	"github.com/hearthglow/storefront/internal/settings"
)

// SettingsHandler serves the public, unauthenticated settings surface. These
// endpoints always answer 200: on any storage failure they log and return
// the empty shape so the storefront shell keeps rendering.
type SettingsHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

func (h *SettingsHandler) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_failed", "error", err)
	}
}

func (h *SettingsHandler) keyValues(c echo.Context, name string, model any) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings."+name)

	var rows []settings.KeyValue
	if err := h.DB.WithContext(ctx).Model(model).Find(&rows).Error; err != nil {
		l.Error("settings_read_failed", "error", err)
		return c.JSON(http.StatusOK, map[string]any{})
	}

	return c.JSON(http.StatusOK, settings.DecodeRows(rows))
}

func (h *SettingsHandler) GetAnimationSettings(c echo.Context) error {
	return h.keyValues(c, "animation", &models.AnimationSetting{})
}

func (h *SettingsHandler) GetCarouselSettings(c echo.Context) error {
	return h.keyValues(c, "carousel", &models.CarouselSetting{})
}

func (h *SettingsHandler) GetDesignSettings(c echo.Context) error {
	return h.keyValues(c, "design", &models.DesignSetting{})
}

func (h *SettingsHandler) GetCarouselSlides(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.carousel_slides")

	var slides []models.CarouselSlide
	if err := h.DB.WithContext(ctx).
		Where("enabled = ?", true).
		Order("sort_order ASC").
		Find(&slides).Error; err != nil {
		l.Error("settings_read_failed", "error", err)
		return c.JSON(http.StatusOK, []models.CarouselSlide{})
	}

	return c.JSON(http.StatusOK, slides)
}

type homepageSection struct {
	ID        uint   `json:"id"`
	Section   string `json:"section"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Metadata  any    `json:"metadata"`
	SortOrder int    `json:"sort_order"`
}

func (h *SettingsHandler) GetHomepageContent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.homepage_content")

	empty := []homepageSection{}

	var rows []models.HomepageContent
	if err := h.DB.WithContext(ctx).
		Where("enabled = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error; err != nil {
		l.Error("settings_read_failed", "error", err)
		return c.JSON(http.StatusOK, empty)
	}

	out := make([]homepageSection, 0, len(rows))
	for _, r := range rows {
		// Metadata must be valid JSON when present; a row violating that
		// invariant degrades the whole surface to its empty shape.
		meta, err := settings.DecodeStrict(r.Metadata)
		if err != nil {
			l.Error("homepage_metadata_invalid", "section", r.Section, "error", err)
			return c.JSON(http.StatusOK, empty)
		}
		out = append(out, homepageSection{
			ID:        r.ID,
			Section:   r.Section,
			Title:     r.Title,
			Body:      r.Body,
			Metadata:  meta,
			SortOrder: r.SortOrder,
		})
	}

	return c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) GetStaticContent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.static_content")

	var rows []models.StaticContent
	if err := h.DB.WithContext(ctx).
		Where("enabled = ?", true).
		Find(&rows).Error; err != nil {
		l.Error("settings_read_failed", "error", err)
		return c.JSON(http.StatusOK, []models.StaticContent{})
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *SettingsHandler) GetStaticContentByKey(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.static_content_by_key")

	var row models.StaticContent
	if err := h.DB.WithContext(ctx).
		Where("key = ? AND enabled = ?", c.Param("key"), true).
		First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.Error("settings_read_failed", "error", err)
		}
		return c.JSON(http.StatusOK, nil)
	}

	return c.JSON(http.StatusOK, &row)
}

// RefreshDesignSettings is a convention, not a mechanism: nothing is
// invalidated server-side. It signals connected clients to refetch their
// configuration, via a best-effort event.
func (h *SettingsHandler) RefreshDesignSettings(c echo.Context) error {
	h.publish(c, "design_settings", map[string]any{
		"type": "settings_refresh_requested",
		"at":   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "refresh signal sent",
	})
}

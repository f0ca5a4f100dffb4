// SPDX-License-Identifier: MIT

// Package server exposes stimulus generation over HTTP.
package server

import (
	"bytes"
	"errors"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"

	"github.com/katalvlaran/leftstim/figure"
	"github.com/katalvlaran/leftstim/internal/config"
	"github.com/katalvlaran/leftstim/internal/generator"
	"github.com/katalvlaran/leftstim/render"
	"github.com/katalvlaran/leftstim/scene"
)

// ============================================================
// App
// ============================================================

// New returns the configured fiber app with every route registered.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "leftstim",
	})

	app.Use(recover.New())
	if cfg.Environment != "test" {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	h := &Handler{cfg: cfg}
	app.Get("/figures", h.Figures)
	app.Get("/stimulus/:figure", h.Stimulus)

	return app
}

// ============================================================
// Handlers
// ============================================================

// Handler serves stimulus requests.
type Handler struct {
	cfg *config.Config
}

// Figures lists the template names.
func (h *Handler) Figures(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"figures": figure.TemplateNames()})
}

// Stimulus renders one variant of a new stimulus as SVG.
//
// Query parameters: variant (onlyfigure, embeddedfigure, nofigure; default
// embeddedfigure), seed (int64; default time based), lines (distractor steps).
// The figure "random" picks a template at random.
func (h *Handler) Stimulus(c fiber.Ctx) error {
	name := c.Params("figure")
	if name == "random" {
		name = ""
	}

	v, err := generator.ParseVariant(c.Query("variant", string(generator.EmbeddedFigure)))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	seed := time.Now().UnixNano()
	if raw := c.Query("seed"); raw != "" {
		if seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "seed must be an integer"})
		}
	}

	recipe := generator.DefaultRecipe()
	recipe.Figure = name
	recipe.ExtraLines = h.cfg.ExtraLines
	if raw := c.Query("lines"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "lines must be a non-negative integer"})
		}
		recipe.ExtraLines = n
	}

	rng := rand.New(rand.NewSource(seed))
	size := float64(h.cfg.FrameSize)
	s, err := generator.Build(recipe, rng,
		scene.WithRand(rng),
		scene.WithFrameSize(size, size),
		scene.WithCanvasSize(h.cfg.CanvasSize, h.cfg.CanvasSize),
	)
	if err != nil {
		if errors.Is(err, figure.ErrUnknownFigure) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[STIM] build error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	w, hgt := s.CanvasSize()
	out := render.NewSVG(&buf, w, hgt)
	if err = generator.Render(s, v, out); err != nil {
		if errors.Is(err, scene.ErrTooFewLines) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[STIM] render error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	out.Close()

	id := uuid.NewString()
	log.Printf("[STIM] %s %s seed=%d id=%s", recipe.Figure, v, seed, id)

	c.Set("Content-Type", "image/svg+xml")
	c.Set("X-Stimulus-Id", id)
	c.Set("X-Stimulus-Seed", strconv.FormatInt(seed, 10))
	return c.SendString(buf.String())
}

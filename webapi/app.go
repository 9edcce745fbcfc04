// Package webapi assembles the fiber application.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/wmazur/kantor/pkg/config"
	"github.com/wmazur/kantor/webapi/account"
	"github.com/wmazur/kantor/webapi/common"
)

// NewApp builds the fiber app with middleware and routes.
func NewApp(svc account.Ledger, cfg *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "kantor",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("kantor is up")
	})

	account.Routes(app, svc, cfg.Ledger)

	return app
}

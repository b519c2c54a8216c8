package httpapi

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// Options configures the routes.
type Options struct {
	// BaseContext parents searches that outlive the request which started
	// them. Cancel it on shutdown.
	BaseContext context.Context
	// SearchTimeout bounds synchronous API searches (0 = no bound).
	SearchTimeout time.Duration
}

// RegisterRoutes wires the dashboard pages and the JSON API into the Fiber app.
func RegisterRoutes(app *fiber.App, service dashboard.Forecaster, sessions *store.SessionStore, opts Options) {
	if opts.BaseContext == nil {
		opts.BaseContext = context.Background()
	}
	withSession := sessionMiddleware(sessions)

	app.Get("/", withSession, func(c *fiber.Ctx) error {
		return renderDashboard(c, currentDashboard(c).View())
	})

	app.Post("/search", withSession, func(c *fiber.Ctx) error {
		// The dashboard keeps the query after the request ends.
		req := searchForm{Query: utils.CopyString(c.FormValue("q"))}
		if strings.TrimSpace(req.Query) == "" {
			// Nothing to search; leave the dashboard as it is.
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		d := currentDashboard(c)
		if err := validate.Struct(req); err != nil {
			// Keep the rejected text in the search field.
			d.SetQuery(req.Query)
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		d.Dispatch(opts.BaseContext, req.Query)
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	app.Post("/locate", withSession, func(c *fiber.Ctx) error {
		d := currentDashboard(c)
		if d.State().Phase() != dashboard.PhaseIdle {
			// The start-up search already ran for this session.
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		at, err := parseLocateForm(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		d.DispatchLocate(opts.BaseContext, at)
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	v1 := app.Group("/api/v1")

	// Dashboard state of the calling session. Unlike the pages it never
	// starts a session.
	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		d, err := sessions.Get(c.Cookies(sessionCookie))
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return err
		}

		v := d.View()
		return c.JSON(fiber.Map{
			"query":    v.Query,
			"phase":    v.Phase.String(),
			"loading":  v.Loading,
			"error":    v.Error,
			"forecast": v.Forecast,
		})
	})

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		req := forecastQuery{Query: strings.TrimSpace(c.Query("q"))}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx := c.UserContext()
		if opts.SearchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.SearchTimeout)
			defer cancel()
		}

		forecast, err := service.FetchForecast(ctx, req.Query)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   true,
				"kind":    weather.ErrorKind(err),
				"message": dashboard.FailureMessage,
			})
		}

		return c.JSON(forecast)
	})
}

// searchForm is the dashboard search box.
type searchForm struct {
	Query string `validate:"required,max=200"`
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Query string `validate:"required,max=200"`
}

// locateForm holds a browser geolocation fix.
type locateForm struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// parseLocateForm returns nil coordinates when the browser denied or lacks
// geolocation, which selects the fallback location.
func parseLocateForm(c *fiber.Ctx) (*dashboard.Coords, error) {
	latStr := strings.TrimSpace(c.FormValue("lat"))
	lonStr := strings.TrimSpace(c.FormValue("lon"))
	if c.FormValue("denied") != "" || latStr == "" || lonStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid lat")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid lon")
	}

	form := locateForm{Lat: lat, Lon: lon}
	if err := validate.Struct(form); err != nil {
		return nil, err
	}
	return &dashboard.Coords{Lat: form.Lat, Lon: form.Lon}, nil
}

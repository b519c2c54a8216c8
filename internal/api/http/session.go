package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/store"
)

const (
	sessionCookie   = "wd_session"
	localsDashboard = "dashboard"
)

// sessionMiddleware attaches the caller's dashboard to the request,
// issuing a session cookie on first visit.
func sessionMiddleware(sessions *store.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The store keeps the id past this request; detach it from the
		// request buffer.
		given := utils.CopyString(c.Cookies(sessionCookie))
		id, d := sessions.GetOrCreate(given)
		if id != given {
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(localsDashboard, d)
		return c.Next()
	}
}

func currentDashboard(c *fiber.Ctx) *dashboard.Dashboard {
	return c.Locals(localsDashboard).(*dashboard.Dashboard)
}

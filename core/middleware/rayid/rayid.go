package rayid

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response (and accepted request) header.
	HeaderName = "X-Ray-ID"
	// LocalsKey is where the id is stored on the fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that tags every request with a RayID. An incoming
// X-Ray-ID header is reused, otherwise a UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// fasthttp reuses header buffers after the handler returns
		id := strings.Clone(c.Get(HeaderName))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// Get returns the RayID of the request, or "".
func Get(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}

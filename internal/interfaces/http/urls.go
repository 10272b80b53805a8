package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
)

// absoluteURL convierte una URL relativa a raíz (ej. /uploads/x.png) en
// absoluta. Usa publicBase si está configurado; si no, el esquema+host de la
// petición entrante. Las URLs ya absolutas se devuelven tal cual.
func absoluteURL(c *fiber.Ctx, publicBase, u string) string {
	if u == "" || !strings.HasPrefix(u, "/") {
		return u
	}
	base := publicBase
	if base == "" {
		base = c.BaseURL()
	}
	return strings.TrimSuffix(base, "/") + u
}

func absolutizeDesign(c *fiber.Ctx, publicBase string, d *dto.DesignResponse) {
	if d == nil || d.ScreenshotURL == nil {
		return
	}
	u := absoluteURL(c, publicBase, *d.ScreenshotURL)
	d.ScreenshotURL = &u
}

func absolutizeDesigns(c *fiber.Ctx, publicBase string, list []dto.DesignResponse) {
	for i := range list {
		absolutizeDesign(c, publicBase, &list[i])
	}
}

func absolutizeQuote(c *fiber.Ctx, publicBase string, q *dto.QuoteResponse) {
	if q == nil || q.ScreenshotURL == nil {
		return
	}
	u := absoluteURL(c, publicBase, *q.ScreenshotURL)
	q.ScreenshotURL = &u
}

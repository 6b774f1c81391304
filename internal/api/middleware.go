package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	languageCookieName = "peptica_lang"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
	contextAdminKey    = "admin_subject"
)

// AdminRequired accepts "Authorization: Bearer <token>" carrying an admin
// token signed with the server secret.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	subject, err := handler.tokenService.VerifyAdminToken(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextAdminKey, subject)
	return c.Next()
}

func currentAdmin(c *fiber.Ctx) string {
	subject, _ := c.Locals(contextAdminKey).(string)
	return subject
}

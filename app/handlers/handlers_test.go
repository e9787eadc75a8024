package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	businessflow "github.com/logenix/freightquote/business_flow"
)

func TestBusinessErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{
			"ValidationError",
			businessflow.NewBusinessError("VALIDATION_ERROR", "Please type your own route.", businessflow.ErrOwnRouteTextRequired),
			fiber.StatusBadRequest,
		},
		{
			"ClosedRouteUnconfirmed",
			businessflow.NewBusinessError("ROUTE_CLOSED_UNCONFIRMED", "confirm to select", businessflow.ErrRouteClosedUnconfirmed),
			fiber.StatusConflict,
		},
		{
			"OtherBusinessError",
			businessflow.NewBusinessError("CATALOG_ERROR", "catalog unreadable", nil),
			fiber.StatusInternalServerError,
		},
		{
			"PlainError",
			errors.New("connection reset"),
			fiber.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c fiber.Ctx) error {
				return businessErrorResponse(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

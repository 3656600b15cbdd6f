// Package handler holds the shell's JSON view routes.
package handler

import (
	"net/http"
	"strconv"

	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/view/table"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the shell is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// tableView renders items through the tabular view, driven by the q, sort and page
// query parameters. Each sort value toggles like a header click, in order.
func tableView[T any](c echo.Context, items []T, columns []table.Column, opts ...table.Option) (table.View, error) {
	records, err := table.FromStructs(items)
	if err != nil {
		return table.View{}, errors.Wrap(err, "table.FromStructs")
	}

	t := table.New(columns, records, opts...)
	if q := c.QueryParam("q"); q != "" {
		t.Search(q)
	}
	for _, key := range c.QueryParams()["sort"] {
		t.SortBy(key)
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		t.SetPage(page)
	}

	return t.Render(), nil
}

// bindAndValidate binds the request body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return c.Validate(req)
}

func price(value any, _ table.Record) any {
	v, ok := value.(float64)
	if !ok {
		return value
	}

	return "₹" + strconv.FormatFloat(v, 'f', 2, 64)
}

// mutation answers a write with its outcome. The message carries the demo label.
func mutation(c echo.Context, status int, outcome usecase.Outcome, err error, message string) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, outcome, outcome.Label(message))
}

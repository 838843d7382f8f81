package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/model"
)

func TestDegradedRead_ServesEmptyCollection(t *testing.T) {
	app := fiber.New()
	app.Get("/rankings", func(c fiber.Ctx) error {
		return degradedRead(c, "rankings", errors.New("connection refused"), fiber.Map{"parks": []model.Park{}})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/rankings", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !strings.Contains(string(body), `"parks":[]`) {
		t.Errorf("body = %s, want an empty parks list", body)
	}
	if strings.Contains(string(body), "error") {
		t.Errorf("body = %s, should not carry an error payload", body)
	}
}

func TestDegradedRead_ServesZeroObject(t *testing.T) {
	app := fiber.New()
	app.Get("/stats", func(c fiber.Ctx) error {
		return degradedRead(c, "stats", errors.New("timeout"), model.StatsResponse{})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

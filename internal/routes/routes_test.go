package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/paybr/cielo_facade/internal/config"
	"github.com/paybr/cielo_facade/internal/logging"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	cfg := config.Config{AppName: "test", AppEnv: "test"}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

const validChargeBody = `{
  "Customer": {
    "Name": "John Doe",
    "Identity": "12345678901",
    "IdentityType": "CPF",
    "Email": "john.doe@example.com",
    "BirthDate": "1990-01-01"
  },
  "Payment": {
    "Type": "CreditCard",
    "Amount": 10000,
    "Currency": "BRL",
    "Country": "BRA",
    "Installments": 1,
    "CreditCard": {
      "CardNumber": "4111111111111111",
      "Holder": "John Doe",
      "ExpirationDate": "12/2099",
      "SecurityCode": "123",
      "Brand": "VISA"
    }
  }
}`

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", payload, err)
	}
	return resp.StatusCode, decoded
}

func TestChargeEndToEnd(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/api/cielo/v1/card/credit", validChargeBody)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	data, _ := body["data"].(map[string]any)
	if data["isApproved"] != true {
		t.Fatalf("expected approved outcome, got %v", data)
	}
}

func TestChargeValidationFailure(t *testing.T) {
	app := setupApp(t)

	body := strings.Replace(validChargeBody, `"SecurityCode": "123"`, `"SecurityCode": "12"`, 1)
	status, decoded := postJSON(t, app, "/api/cielo/v1/card/credit", body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", status, decoded)
	}
	if decoded["code"] != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", decoded)
	}
}

func TestZeroAuthEndpoint(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/api/cielo/v1/zeroauth", `{
	  "CardType": "CreditCard",
	  "CardNumber": "4111111111111111",
	  "Holder": "John Doe",
	  "ExpirationDate": "12/2030",
	  "SecurityCode": "123",
	  "Brand": "VISA",
	  "CardOnFile": {"Usage": "First", "Reason": "Unscheduled"}
	}`)
	if status != fiber.StatusOK || body["success"] != true {
		t.Fatalf("expected success, got %d: %v", status, body)
	}
}

func TestCardBinEndpoints(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/cielo/v1/cardBin/411111", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req = httptest.NewRequest(fiber.MethodGet, "/api/cielo/v1/cardBin/000000", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for test BIN, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestExtractEndpoint(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/api/cielo/v1/cardBin/extract", `{"cardNumber": "4111 1111 1111 1111"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["bin"] != "411111" {
		t.Fatalf("expected bin 411111, got %v", data)
	}
}

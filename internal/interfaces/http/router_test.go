package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shipment-intake-api/internal/application/auth"
	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
	"github.com/jhoicas/shipment-intake-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/shipment-intake-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/shipment-intake-api/internal/interfaces/http"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

// buildAPIApp arma la aplicación completa sobre el fixture, igual que main
// pero sin latencia simulada.
func buildAPIApp(t *testing.T) *fiber.App {
	t.Helper()

	companyRepo := memory.NewCompanyRepository(memory.FixtureCompanies())
	shipmentRepo := memory.NewShipmentRepository(memory.FixtureShipments())
	sessions := memory.NewSessionStore()
	verifier, err := memory.NewCredentialVerifier("user", "password")
	require.NoError(t, err)

	authUC := auth.NewAuthUseCase(verifier, sessions, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, 0)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, companyRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		ShipmentUC: shipmentUC,
		CompanyUC:  usecase.NewCompanyUseCase(companyRepo),
		CalendarUC: usecase.NewCalendarUseCase(),
		ReportUC:   usecase.NewReportUseCase(shipmentUC, infrapdf.NewMarotoReportGenerator()),
		Sessions:   sessions,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginForToken hace login con la credencial del fixture y devuelve el token.
func loginForToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Username: "user", Password: "password"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginYRehidratacion(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	assert.Equal(t, "user", user.Username)
}

func TestAPI_LoginCredencialIncorrecta(t *testing.T) {
	app := buildAPIApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Username: "user", Password: "wrong"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_LogoutInvalidaElToken(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Una "carga fresca" tras logout arranca sin autenticar.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/session", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPIApp(t)
	for _, path := range []string{
		"/api/shipments",
		"/api/statistics/daily",
		"/api/companies",
		"/api/calendar",
	} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"la ruta %s debe exigir autenticación", path)
	}
}

func TestAPI_ChangePassword(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	// Confirmación que no coincide: bloquea con mensaje localizado.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "nueva1", ConfirmPassword: "otra"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nueva demasiado corta.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "abc", ConfirmPassword: "abc"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Actual incorrecta: 200 con success=false, la UI lo muestra inline.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "nueva1", ConfirmPassword: "nueva1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg dto.MessageResponse
	decode(t, resp, &msg)
	assert.False(t, msg.Success)

	// Cambio válido: los logins posteriores usan la credencial nueva.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "nueva1", ConfirmPassword: "nueva1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &msg)
	assert.True(t, msg.Success)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Username: "user", Password: "nueva1"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Shipments y estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ShipmentsFiltro(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	// Sin criterios: fixture completo.
	resp := doJSON(t, app, http.MethodGet, "/api/shipments", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ShipmentListResponse
	decode(t, resp, &list)
	assert.Equal(t, 14, list.Total)

	// Subcadena de barcode insensible a mayúsculas.
	resp = doJSON(t, app, http.MethodGet, "/api/shipments?barcode=dhl", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &list)
	require.NotEmpty(t, list.Items)
	for _, it := range list.Items {
		assert.Contains(t, it.Barcode, "DHL")
	}

	// Empresa + fecha mal formada (criterio ausente, nunca error).
	resp = doJSON(t, app, http.MethodGet, "/api/shipments?company_id=1&start_date=garbage", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &list)
	for _, it := range list.Items {
		assert.Equal(t, int64(1), it.CompanyID)
		assert.Equal(t, "أرامكس", it.CompanyName)
	}
}

func TestAPI_EstadisticasDiarias(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)
	hoy := artime.Today()

	resp := doJSON(t, app, http.MethodGet, "/api/statistics/daily?date="+hoy.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.DailyStatsResponse
	decode(t, resp, &stats)

	// El fixture trae 7 ingresos hoy con un barcode re-escaneado.
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 1, stats.DuplicateCount)
	assert.Len(t, stats.Items, 7)

	// El filtro por empresa reduce la lista pero no los contadores.
	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/statistics/daily?date=%s&company_id=2", hoy), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &stats)
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 1, stats.DuplicateCount)
	assert.Len(t, stats.Items, 2)
}

func TestAPI_ReporteDiarioPDF(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/statistics/daily/report", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CompaniesAltaYAlternado(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	// Nombre vacío rechazado.
	resp := doJSON(t, app, http.MethodPost, "/api/companies", token,
		dto.CreateCompanyRequest{Name: "   "})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Alta válida: ID consecutivo al final del roster.
	resp = doJSON(t, app, http.MethodPost, "/api/companies", token,
		dto.CreateCompanyRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CompanyResponse
	decode(t, resp, &created)
	assert.Equal(t, int64(6), created.ID)
	assert.Equal(t, "active", created.Status)

	// Alternar dos veces devuelve el estado original.
	resp = doJSON(t, app, http.MethodPatch, "/api/companies/6/toggle-status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled dto.CompanyResponse
	decode(t, resp, &toggled)
	assert.Equal(t, "inactive", toggled.Status)

	resp = doJSON(t, app, http.MethodPatch, "/api/companies/6/toggle-status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &toggled)
	assert.Equal(t, "active", toggled.Status)

	// ID inexistente.
	resp = doJSON(t, app, http.MethodPatch, "/api/companies/999/toggle-status", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calendar
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CalendarioMesFijo(t *testing.T) {
	app := buildAPIApp(t)
	token := loginForToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/calendar?month=2026-08&selected=2026-08-01", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var grid artime.CalendarMonth
	decode(t, resp, &grid)

	assert.Equal(t, 2026, grid.Year)
	assert.Equal(t, 8, grid.Month)
	require.Len(t, grid.Cells, 31, "agosto 2026 inicia en sábado: sin blancos")
	assert.True(t, grid.Cells[0].Selected)

	// selected imparseable = sin selección; month imparseable = mes actual.
	resp = doJSON(t, app, http.MethodGet, "/api/calendar?month=garbage&selected=garbage", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &grid)
	hoy := artime.Today()
	assert.Equal(t, hoy.Year, grid.Year)
	assert.Equal(t, int(hoy.Month), grid.Month)
}

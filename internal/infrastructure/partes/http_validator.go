// Package partes implementa el puerto PartValidator contra el catálogo
// externo de partes automotrices. Usa net/http de la librería estándar;
// no hay SDK del proveedor.
package partes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/refaccionaria/autopartes-api/internal/application/ports"
)

// Verificar en tiempo de compilación que HTTPValidator implementa PartValidator.
var _ ports.PartValidator = (*HTTPValidator)(nil)

// HTTPValidator adaptador que consulta el servicio externo de validación.
// Con baseURL vacío opera en modo stub: aprueba toda combinación
// marca/modelo/año (comportamiento histórico del sistema).
type HTTPValidator struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPValidator construye el adaptador. baseURL vacío activa el modo stub.
func NewHTTPValidator(baseURL string) *HTTPValidator {
	return &HTTPValidator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// respuesta esperada del servicio externo.
type validateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Validate consulta GET {baseURL}/validate?brand=&model=&year= y devuelve el veredicto.
// En modo stub devuelve siempre válido sin tocar la red.
func (v *HTTPValidator) Validate(ctx context.Context, marca, modelo string, ano int) (ports.PartValidationResult, error) {
	if v.baseURL == "" {
		return ports.PartValidationResult{Valid: true, Message: "Validación exitosa"}, nil
	}

	q := url.Values{}
	q.Set("brand", marca)
	q.Set("model", modelo)
	q.Set("year", strconv.Itoa(ano))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/validate?"+q.Encode(), nil)
	if err != nil {
		return ports.PartValidationResult{}, fmt.Errorf("partes: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return ports.PartValidationResult{}, fmt.Errorf("partes: llamar servicio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.PartValidationResult{}, fmt.Errorf("partes: status inesperado %d", resp.StatusCode)
	}

	var out validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ports.PartValidationResult{}, fmt.Errorf("partes: decodificar respuesta: %w", err)
	}
	return ports.PartValidationResult{Valid: out.Valid, Message: out.Message}, nil
}

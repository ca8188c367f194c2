package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/refaccionaria/autopartes-api/internal/application/auth"
	"github.com/refaccionaria/autopartes-api/internal/application/ports"
	"github.com/refaccionaria/autopartes-api/internal/application/usecase"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	apphttp "github.com/refaccionaria/autopartes-api/internal/interfaces/http"
	pkgjwt "github.com/refaccionaria/autopartes-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "autopartes-api-test"
	testExpHours  = 24
)

func init() {
	// Mismo ajuste que hace main: precio como número JSON.
	decimal.MarshalJSONWithoutQuotes = true
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria (implementan los puertos de dominio)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsuarioYaExiste
		}
	}
	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	list := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	existing, ok := r.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, u := range r.users {
		if u.ID != user.ID && u.Username == user.Username {
			return domain.ErrUsuarioYaExiste
		}
	}
	existing.Username = user.Username
	existing.PasswordHash = user.PasswordHash
	existing.Role = user.Role
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeSaleRepo struct {
	seq   int64
	sales map[int64]*entity.Sale
	users *fakeUserRepo
}

func newFakeSaleRepo(users *fakeUserRepo) *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[int64]*entity.Sale{}, users: users}
}

func (r *fakeSaleRepo) withUsername(s *entity.Sale) *entity.Sale {
	cp := *s
	if u, _ := r.users.GetByID(s.VendedorID); u != nil {
		cp.VendedorUsername = u.Username
	}
	return &cp
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.seq++
	sale.ID = r.seq
	if sale.Estatus == "" {
		sale.Estatus = entity.SaleStatusBuscando
	}
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return r.withUsername(s), nil
}

func (r *fakeSaleRepo) List(includeArchived bool) ([]*entity.Sale, error) {
	list := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if !includeArchived && entity.IsArchivedSaleStatus(s.Estatus) {
			continue
		}
		list = append(list, r.withUsername(s))
	}
	// created_at DESC; el ID serial desempata con el mismo orden.
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *fakeSaleRepo) Exists(id int64) (bool, error) {
	_, ok := r.sales[id]
	return ok, nil
}

func (r *fakeSaleRepo) Update(sale *entity.Sale) error {
	existing, ok := r.sales[sale.ID]
	if !ok {
		return domain.ErrNotFound
	}
	sale.CreatedAt = existing.CreatedAt
	sale.VendedorID = existing.VendedorID
	sale.UpdatedAt = time.Now()
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) UpdateStatus(id int64, estatus string) error {
	s, ok := r.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Estatus = estatus
	s.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSaleRepo) Delete(id int64) error {
	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

type fakeClaimRepo struct {
	seq    int64
	claims map[int64]*entity.Claim
	sales  *fakeSaleRepo
}

func newFakeClaimRepo(sales *fakeSaleRepo) *fakeClaimRepo {
	return &fakeClaimRepo{claims: map[int64]*entity.Claim{}, sales: sales}
}

func (r *fakeClaimRepo) withJoin(c *entity.Claim) *entity.Claim {
	cp := *c
	if s, _ := r.sales.GetByID(c.VentaID); s != nil {
		cp.ClienteNombre = s.ClienteNombre
		cp.ClienteTelefono = s.ClienteTelefono
		cp.Parte = s.Parte
		cp.Precio = s.Precio
		cp.VendedorUsername = s.VendedorUsername
	}
	return &cp
}

func (r *fakeClaimRepo) Create(claim *entity.Claim) error {
	if ok, _ := r.sales.Exists(claim.VentaID); !ok {
		return domain.ErrVentaNotFound
	}
	r.seq++
	claim.ID = r.seq
	if claim.Estatus == "" {
		claim.Estatus = entity.ClaimStatusAbierto
	}
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = claim.CreatedAt
	cp := *claim
	r.claims[claim.ID] = &cp
	return nil
}

func (r *fakeClaimRepo) GetByID(id int64) (*entity.Claim, error) {
	c, ok := r.claims[id]
	if !ok {
		return nil, nil
	}
	return r.withJoin(c), nil
}

func (r *fakeClaimRepo) List() ([]*entity.Claim, error) {
	list := make([]*entity.Claim, 0, len(r.claims))
	for _, c := range r.claims {
		list = append(list, r.withJoin(c))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *fakeClaimRepo) UpdateStatus(id int64, estatus string) error {
	c, ok := r.claims[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Estatus = estatus
	c.UpdatedAt = time.Now()
	return nil
}

func (r *fakeClaimRepo) Delete(id int64) error {
	if _, ok := r.claims[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.claims, id)
	return nil
}

// stubPartValidator veredicto configurable; por defecto aprueba (modo stub).
type stubPartValidator struct {
	valid   bool
	message string
}

func newStubPartValidator() *stubPartValidator {
	return &stubPartValidator{valid: true, message: "Validación exitosa"}
}

func (v *stubPartValidator) Validate(_ context.Context, _, _ string, _ int) (ports.PartValidationResult, error) {
	return ports.PartValidationResult{Valid: v.valid, Message: v.message}, nil
}

// stubReportGenerator devuelve bytes fijos con cabecera PDF.
type stubReportGenerator struct{}

func (stubReportGenerator) GenerateSalesReport(_ context.Context, _ []*entity.Sale) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test: app Fiber completa con repos fake
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	users     *fakeUserRepo
	sales     *fakeSaleRepo
	claims    *fakeClaimRepo
	validator *stubPartValidator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newFakeUserRepo()
	sales := newFakeSaleRepo(users)
	claims := newFakeClaimRepo(sales)
	validator := newStubPartValidator()

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:   testJWTSecret,
		ExpHours: testExpHours,
		Issuer:   testIssuer,
	})
	saleUC := usecase.NewSaleUseCase(sales, validator, stubReportGenerator{})
	claimUC := usecase.NewClaimUseCase(claims, sales)
	userUC := usecase.NewUserUseCase(users)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		SaleUC:    saleUC,
		ClaimUC:   claimUC,
		UserUC:    userUC,
		JWTSecret: testJWTSecret,
	})

	return &testEnv{app: app, users: users, sales: sales, claims: claims, validator: validator}
}

// addUser crea un usuario directamente en el repo fake con el password hasheado.
func (e *testEnv) addUser(t *testing.T, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, PasswordHash: string(hash), Role: role}
	require.NoError(t, e.users.Create(u))
	return u
}

// addSale inserta una venta directamente en el repo fake.
func (e *testEnv) addSale(t *testing.T, vendedorID int64, estatus string) *entity.Sale {
	t.Helper()
	s := &entity.Sale{
		ClienteNombre:   "Juan Pérez",
		ClienteTelefono: "555-0100",
		Marca:           "Toyota",
		Modelo:          "Corolla",
		Ano:             2018,
		Parte:           "Alternador",
		Precio:          decimal.NewFromInt(1500),
		Fecha:           time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Estatus:         estatus,
		VendedorID:      vendedorID,
	}
	require.NoError(t, e.sales.Create(s))
	return s
}

// cookieFor genera la cookie de sesión para un usuario.
func cookieFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Username, u.Role, testIssuer, testExpHours)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return apphttp.CookieName + "=" + tok
}

// doRequest lanza una petición con body JSON opcional y cookie opcional.
func doRequest(t *testing.T, app *fiber.App, method, path, cookie string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el body JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// sessionCookie extrae la cookie de sesión de una respuesta de login.
func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.CookieName {
			return fmt.Sprintf("%s=%s", c.Name, c.Value)
		}
	}
	return ""
}

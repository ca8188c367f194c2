package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	"github.com/refaccionaria/autopartes-api/internal/domain/repository"
)

var _ repository.ClaimRepository = (*ClaimRepo)(nil)

// ClaimRepo implementación del puerto ClaimRepository sobre PostgreSQL.
type ClaimRepo struct {
	pool *pgxpool.Pool
}

// NewClaimRepository construye el adaptador de persistencia para reclamos.
func NewClaimRepository(pool *pgxpool.Pool) *ClaimRepo {
	return &ClaimRepo{pool: pool}
}

// Create persiste un nuevo reclamo y asigna el ID generado.
// Si la venta referenciada no existe, la FK dispara ErrVentaNotFound.
func (r *ClaimRepo) Create(claim *entity.Claim) error {
	query := `
		INSERT INTO claims (venta_id, tipo, descripcion)
		VALUES ($1, $2, $3)
		RETURNING id, estatus, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		claim.VentaID, claim.Tipo, claim.Descripcion,
	).Scan(&claim.ID, &claim.Estatus, &claim.CreatedAt, &claim.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrVentaNotFound
		}
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

// GetByID obtiene un reclamo con los datos de la venta y el vendedor. (nil, nil) si no existe.
func (r *ClaimRepo) GetByID(id int64) (*entity.Claim, error) {
	query := `
		SELECT c.id, c.venta_id, c.tipo, c.descripcion, c.estatus, c.created_at, c.updated_at,
		       s.cliente_nombre, s.cliente_telefono, s.parte, s.precio,
		       u.username AS vendedor_username
		FROM claims c
		JOIN sales s ON c.venta_id = s.id
		JOIN users u ON s.vendedor_id = u.id
		WHERE c.id = $1`
	var c entity.Claim
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.VentaID, &c.Tipo, &c.Descripcion, &c.Estatus, &c.CreatedAt, &c.UpdatedAt,
		&c.ClienteNombre, &c.ClienteTelefono, &c.Parte, &c.Precio,
		&c.VendedorUsername,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim by id: %w", err)
	}
	return &c, nil
}

// List devuelve los reclamos con venta y vendedor, más recientes primero.
func (r *ClaimRepo) List() ([]*entity.Claim, error) {
	query := `
		SELECT c.id, c.venta_id, c.tipo, c.descripcion, c.estatus, c.created_at, c.updated_at,
		       s.cliente_nombre, s.parte, s.precio,
		       u.username AS vendedor_username
		FROM claims c
		JOIN sales s ON c.venta_id = s.id
		JOIN users u ON s.vendedor_id = u.id
		ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()
	var list []*entity.Claim
	for rows.Next() {
		var c entity.Claim
		err := rows.Scan(
			&c.ID, &c.VentaID, &c.Tipo, &c.Descripcion, &c.Estatus, &c.CreatedAt, &c.UpdatedAt,
			&c.ClienteNombre, &c.Parte, &c.Precio,
			&c.VendedorUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateStatus cambia solo el estatus. ErrNotFound si no hay fila.
func (r *ClaimRepo) UpdateStatus(id int64, estatus string) error {
	query := `UPDATE claims SET estatus = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, estatus)
	if err != nil {
		return fmt.Errorf("update claim status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un reclamo por ID. ErrNotFound si no hay fila.
func (r *ClaimRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

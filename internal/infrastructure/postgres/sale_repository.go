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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

const saleColumns = `
	s.id, s.cliente_nombre, s.cliente_telefono, s.marca, s.modelo, s.ano,
	s.parte, s.precio, s.fecha, s.estatus, s.vendedor_id, s.created_at,
	s.updated_at, u.username AS vendedor_username`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ClienteNombre, &s.ClienteTelefono, &s.Marca, &s.Modelo, &s.Ano,
		&s.Parte, &s.Precio, &s.Fecha, &s.Estatus, &s.VendedorID, &s.CreatedAt,
		&s.UpdatedAt, &s.VendedorUsername,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva venta y asigna el ID generado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (cliente_nombre, cliente_telefono, marca, modelo, ano, parte, precio, fecha, vendedor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, estatus, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		sale.ClienteNombre, sale.ClienteTelefono, sale.Marca, sale.Modelo, sale.Ano,
		sale.Parte, sale.Precio, sale.Fecha, sale.VendedorID,
	).Scan(&sale.ID, &sale.Estatus, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con el username del vendedor. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		JOIN users u ON s.vendedor_id = u.id
		WHERE s.id = $1`
	sale, err := scanSale(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return sale, nil
}

// List devuelve las ventas con el username del vendedor, más recientes primero.
// Con includeArchived en false excluye los estatus terminales.
func (r *SaleRepo) List(includeArchived bool) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s
		JOIN users u ON s.vendedor_id = u.id`
	if !includeArchived {
		query += ` WHERE s.estatus NOT IN ('entregado', 'reembolsado')`
	}
	query += ` ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

// Exists verifica si una venta existe (para la FK de reclamos).
func (r *SaleRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sale exists: %w", err)
	}
	return exists, nil
}

// Update reemplaza todos los campos mutables de la venta. ErrNotFound si no hay fila.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET cliente_nombre = $2, cliente_telefono = $3, marca = $4, modelo = $5,
		    ano = $6, parte = $7, precio = $8, fecha = $9, estatus = $10,
		    updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		sale.ID, sale.ClienteNombre, sale.ClienteTelefono, sale.Marca, sale.Modelo,
		sale.Ano, sale.Parte, sale.Precio, sale.Fecha, sale.Estatus,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estatus. ErrNotFound si no hay fila.
func (r *SaleRepo) UpdateStatus(id int64, estatus string) error {
	query := `UPDATE sales SET estatus = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, estatus)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta por ID. ErrNotFound si no hay fila.
func (r *SaleRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

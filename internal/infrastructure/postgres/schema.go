package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes de arranque. No hay sistema de migraciones: el
// esquema son tres colecciones con llaves foráneas y CHECKs para los
// conjuntos cerrados de estatus/roles.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('vendedor', 'dueno', 'admin')),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id               BIGSERIAL PRIMARY KEY,
		cliente_nombre   TEXT NOT NULL,
		cliente_telefono TEXT NOT NULL,
		marca            TEXT NOT NULL,
		modelo           TEXT NOT NULL,
		ano              INTEGER NOT NULL,
		parte            TEXT NOT NULL,
		precio           NUMERIC(12,2) NOT NULL,
		fecha            DATE NOT NULL,
		estatus          TEXT NOT NULL DEFAULT 'buscando'
		                 CHECK (estatus IN ('buscando', 'listo', 'entregado', 'reembolsado')),
		vendedor_id      BIGINT NOT NULL REFERENCES users (id),
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS claims (
		id          BIGSERIAL PRIMARY KEY,
		venta_id    BIGINT NOT NULL REFERENCES sales (id),
		tipo        TEXT NOT NULL CHECK (tipo IN ('cambio', 'reembolso')),
		descripcion TEXT NOT NULL,
		estatus     TEXT NOT NULL DEFAULT 'abierto'
		            CHECK (estatus IN ('abierto', 'procesando', 'resuelto', 'rechazado')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema crea las tablas si no existen. Seguro de ejecutar en cada arranque.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

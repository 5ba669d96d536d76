package passageiro

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	GetPassageiroById(ctx context.Context, id int64) (db.Passageiro, error)
	ListPassageirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Passageiro, error)
	UpdatePassageiroGeocodificacao(ctx context.Context, arg db.UpdatePassageiroGeocodificacaoParams) error
	GetRoteirizacaoById(ctx context.Context, id int64) (db.Roteirizacao, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewPassageiroRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetPassageiroById(ctx context.Context, id int64) (db.Passageiro, error) {
	return r.Queries.GetPassageiroById(ctx, id)
}
func (r *Repository) ListPassageirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Passageiro, error) {
	return r.Queries.ListPassageirosByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) UpdatePassageiroGeocodificacao(ctx context.Context, arg db.UpdatePassageiroGeocodificacaoParams) error {
	return r.Queries.UpdatePassageiroGeocodificacao(ctx, arg)
}
func (r *Repository) GetRoteirizacaoById(ctx context.Context, id int64) (db.Roteirizacao, error) {
	return r.Queries.GetRoteirizacaoById(ctx, id)
}

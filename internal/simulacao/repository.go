package simulacao

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateSimulacao(ctx context.Context, arg db.CreateSimulacaoParams) (db.Simulacao, error)
	GetSimulacaoById(ctx context.Context, id int64) (db.Simulacao, error)
	ListSimulacoesByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Simulacao, error)
	DeleteSimulacao(ctx context.Context, id int64) error

	GetRoteirizacaoById(ctx context.Context, id int64) (db.Roteirizacao, error)
	ListRoteirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Roteiro, error)
	ListParadasByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Parada, error)
	ListPassageirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Passageiro, error)

	ExecTx(ctx context.Context, fn func(q *db.Queries) error) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewSimulacaoRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) CreateSimulacao(ctx context.Context, arg db.CreateSimulacaoParams) (db.Simulacao, error) {
	return r.Queries.CreateSimulacao(ctx, arg)
}
func (r *Repository) GetSimulacaoById(ctx context.Context, id int64) (db.Simulacao, error) {
	return r.Queries.GetSimulacaoById(ctx, id)
}
func (r *Repository) ListSimulacoesByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Simulacao, error) {
	return r.Queries.ListSimulacoesByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) DeleteSimulacao(ctx context.Context, id int64) error {
	return r.Queries.DeleteSimulacao(ctx, id)
}
func (r *Repository) GetRoteirizacaoById(ctx context.Context, id int64) (db.Roteirizacao, error) {
	return r.Queries.GetRoteirizacaoById(ctx, id)
}
func (r *Repository) ListRoteirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Roteiro, error) {
	return r.Queries.ListRoteirosByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) ListParadasByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Parada, error) {
	return r.Queries.ListParadasByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) ListPassageirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Passageiro, error) {
	return r.Queries.ListPassageirosByRoteirizacao(ctx, roteirizacaoID)
}

func (r *Repository) ExecTx(ctx context.Context, fn func(q *db.Queries) error) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(r.Queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}
	return tx.Commit()
}

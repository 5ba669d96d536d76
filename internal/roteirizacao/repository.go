package roteirizacao

import (
	"context"
	"database/sql"

	db "roteirizador/db/sqlc"
)

type InterfaceRepository interface {
	CreateRoteirizacao(ctx context.Context, arg db.CreateRoteirizacaoParams) (db.Roteirizacao, error)
	GetRoteirizacaoById(ctx context.Context, id int64) (db.Roteirizacao, error)
	ListRoteirizacoes(ctx context.Context) ([]db.Roteirizacao, error)
	UpdateRoteirizacaoDestino(ctx context.Context, arg db.UpdateRoteirizacaoDestinoParams) (db.Roteirizacao, error)
	UpdateRoteirizacaoParametros(ctx context.Context, arg db.UpdateRoteirizacaoParametrosParams) (db.Roteirizacao, error)
	UpdateRoteirizacaoStatus(ctx context.Context, arg db.UpdateRoteirizacaoStatusParams) error
	UpdateRoteirizacaoTotais(ctx context.Context, arg db.UpdateRoteirizacaoTotaisParams) error
	DeleteRoteirizacao(ctx context.Context, id int64) error

	CreatePassageiro(ctx context.Context, arg db.CreatePassageiroParams) (db.Passageiro, error)
	ListPassageirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Passageiro, error)
	UpdatePassageiroParada(ctx context.Context, arg db.UpdatePassageiroParadaParams) error
	UpdatePassageiroTempoVeiculo(ctx context.Context, arg db.UpdatePassageiroTempoVeiculoParams) error
	ClearParadasDosPassageiros(ctx context.Context, roteirizacaoID int64) error

	CreateParada(ctx context.Context, arg db.CreateParadaParams) (db.Parada, error)
	ListParadasByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Parada, error)
	ListParadasByRoteiro(ctx context.Context, roteiroID sql.NullInt64) ([]db.Parada, error)
	UpdateParadaRoteiro(ctx context.Context, arg db.UpdateParadaRoteiroParams) error
	UpdateParadaNome(ctx context.Context, arg db.UpdateParadaNomeParams) error
	DeleteParadasByRoteirizacao(ctx context.Context, roteirizacaoID int64) error

	CreateRoteiro(ctx context.Context, arg db.CreateRoteiroParams) (db.Roteiro, error)
	GetRoteiroById(ctx context.Context, id int64) (db.Roteiro, error)
	ListRoteirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Roteiro, error)
	UpdateRoteiroResultado(ctx context.Context, arg db.UpdateRoteiroResultadoParams) error
	DeleteRoteirosByDirecao(ctx context.Context, arg db.DeleteRoteirosByDirecaoParams) error

	ExecTx(ctx context.Context, fn func(q *db.Queries) error) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewRoteirizacaoRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) CreateRoteirizacao(ctx context.Context, arg db.CreateRoteirizacaoParams) (db.Roteirizacao, error) {
	return r.Queries.CreateRoteirizacao(ctx, arg)
}
func (r *Repository) GetRoteirizacaoById(ctx context.Context, id int64) (db.Roteirizacao, error) {
	return r.Queries.GetRoteirizacaoById(ctx, id)
}
func (r *Repository) ListRoteirizacoes(ctx context.Context) ([]db.Roteirizacao, error) {
	return r.Queries.ListRoteirizacoes(ctx)
}
func (r *Repository) UpdateRoteirizacaoDestino(ctx context.Context, arg db.UpdateRoteirizacaoDestinoParams) (db.Roteirizacao, error) {
	return r.Queries.UpdateRoteirizacaoDestino(ctx, arg)
}
func (r *Repository) UpdateRoteirizacaoParametros(ctx context.Context, arg db.UpdateRoteirizacaoParametrosParams) (db.Roteirizacao, error) {
	return r.Queries.UpdateRoteirizacaoParametros(ctx, arg)
}
func (r *Repository) UpdateRoteirizacaoStatus(ctx context.Context, arg db.UpdateRoteirizacaoStatusParams) error {
	return r.Queries.UpdateRoteirizacaoStatus(ctx, arg)
}
func (r *Repository) UpdateRoteirizacaoTotais(ctx context.Context, arg db.UpdateRoteirizacaoTotaisParams) error {
	return r.Queries.UpdateRoteirizacaoTotais(ctx, arg)
}
func (r *Repository) DeleteRoteirizacao(ctx context.Context, id int64) error {
	return r.Queries.DeleteRoteirizacao(ctx, id)
}

func (r *Repository) CreatePassageiro(ctx context.Context, arg db.CreatePassageiroParams) (db.Passageiro, error) {
	return r.Queries.CreatePassageiro(ctx, arg)
}
func (r *Repository) ListPassageirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Passageiro, error) {
	return r.Queries.ListPassageirosByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) UpdatePassageiroParada(ctx context.Context, arg db.UpdatePassageiroParadaParams) error {
	return r.Queries.UpdatePassageiroParada(ctx, arg)
}
func (r *Repository) UpdatePassageiroTempoVeiculo(ctx context.Context, arg db.UpdatePassageiroTempoVeiculoParams) error {
	return r.Queries.UpdatePassageiroTempoVeiculo(ctx, arg)
}
func (r *Repository) ClearParadasDosPassageiros(ctx context.Context, roteirizacaoID int64) error {
	return r.Queries.ClearParadasDosPassageiros(ctx, roteirizacaoID)
}

func (r *Repository) CreateParada(ctx context.Context, arg db.CreateParadaParams) (db.Parada, error) {
	return r.Queries.CreateParada(ctx, arg)
}
func (r *Repository) ListParadasByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Parada, error) {
	return r.Queries.ListParadasByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) ListParadasByRoteiro(ctx context.Context, roteiroID sql.NullInt64) ([]db.Parada, error) {
	return r.Queries.ListParadasByRoteiro(ctx, roteiroID)
}
func (r *Repository) UpdateParadaRoteiro(ctx context.Context, arg db.UpdateParadaRoteiroParams) error {
	return r.Queries.UpdateParadaRoteiro(ctx, arg)
}
func (r *Repository) UpdateParadaNome(ctx context.Context, arg db.UpdateParadaNomeParams) error {
	return r.Queries.UpdateParadaNome(ctx, arg)
}
func (r *Repository) DeleteParadasByRoteirizacao(ctx context.Context, roteirizacaoID int64) error {
	return r.Queries.DeleteParadasByRoteirizacao(ctx, roteirizacaoID)
}

func (r *Repository) CreateRoteiro(ctx context.Context, arg db.CreateRoteiroParams) (db.Roteiro, error) {
	return r.Queries.CreateRoteiro(ctx, arg)
}
func (r *Repository) GetRoteiroById(ctx context.Context, id int64) (db.Roteiro, error) {
	return r.Queries.GetRoteiroById(ctx, id)
}
func (r *Repository) ListRoteirosByRoteirizacao(ctx context.Context, roteirizacaoID int64) ([]db.Roteiro, error) {
	return r.Queries.ListRoteirosByRoteirizacao(ctx, roteirizacaoID)
}
func (r *Repository) UpdateRoteiroResultado(ctx context.Context, arg db.UpdateRoteiroResultadoParams) error {
	return r.Queries.UpdateRoteiroResultado(ctx, arg)
}
func (r *Repository) DeleteRoteirosByDirecao(ctx context.Context, arg db.DeleteRoteirosByDirecaoParams) error {
	return r.Queries.DeleteRoteirosByDirecao(ctx, arg)
}

// ExecTx roda fn dentro de uma transação. A edição manual de rota troca a
// ordem de várias paradas de uma vez; parcial não pode ficar visível.
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

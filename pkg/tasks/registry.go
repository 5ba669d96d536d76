package tasks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("tasks: task não encontrada")

const (
	StatusRodando   = "rodando"
	StatusConcluida = "concluida"
	StatusFalha     = "falha"
	StatusCancelada = "cancelada"
)

// Task é o estado observável de um processamento em segundo plano. O
// resultado fica disponível para polling depois que o websocket fecha.
type Task struct {
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	Etapa      string      `json:"etapa"`
	Percentual int         `json:"percentual"`
	Erro       string      `json:"erro,omitempty"`
	Resultado  interface{} `json:"resultado,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	cancel context.CancelFunc
}

// Registry guarda as tarefas em memória. Uma única roteirização roda por
// vários minutos; o registro existe para o front acompanhar e cancelar.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	ttl   time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Registry{
		tasks: make(map[string]*Task),
		ttl:   ttl,
	}
}

// Start cria a tarefa e devolve o contexto que o worker deve respeitar:
// cancelamento via API ou pelo prazo máximo de execução.
func (r *Registry) Start(parent context.Context, budget time.Duration) (*Task, context.Context) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if budget > 0 {
		ctx, cancel = context.WithTimeout(parent, budget)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}

	now := time.Now()
	task := &Task{
		ID:        uuid.NewString(),
		Status:    StatusRodando,
		CreatedAt: now,
		UpdatedAt: now,
		cancel:    cancel,
	}

	r.mu.Lock()
	r.tasks[task.ID] = task
	r.mu.Unlock()

	r.sweep()
	return task, ctx
}

func (r *Registry) Get(id string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return *task, nil
}

// Progress atualiza etapa e percentual de uma tarefa em execução.
func (r *Registry) Progress(id, etapa string, percentual int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task, ok := r.tasks[id]; ok && task.Status == StatusRodando {
		task.Etapa = etapa
		task.Percentual = percentual
		task.UpdatedAt = time.Now()
	}
}

func (r *Registry) Finish(id string, resultado interface{}) {
	r.setFinal(id, StatusConcluida, "", resultado)
}

func (r *Registry) Fail(id string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	r.setFinal(id, StatusFalha, msg, nil)
}

// Cancel interrompe o worker via contexto. A tarefa só vira "cancelada" se
// ainda estava rodando.
func (r *Registry) Cancel(id string) error {
	r.mu.Lock()
	task, ok := r.tasks[id]
	if !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	running := task.Status == StatusRodando
	if running {
		task.Status = StatusCancelada
		task.UpdatedAt = time.Now()
	}
	cancel := task.cancel
	r.mu.Unlock()

	if running && cancel != nil {
		cancel()
	}
	return nil
}

func (r *Registry) setFinal(id, status, errMsg string, resultado interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.Status != StatusRodando {
		return
	}
	task.Status = status
	task.Erro = errMsg
	task.Resultado = resultado
	task.Percentual = 100
	task.UpdatedAt = time.Now()
	if task.cancel != nil {
		task.cancel()
		task.cancel = nil
	}
}

// sweep remove tarefas terminadas há mais tempo que o TTL. Chamado em
// Start, o que basta para o volume esperado.
func (r *Registry) sweep() {
	cutoff := time.Now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, task := range r.tasks {
		if task.Status != StatusRodando && task.UpdatedAt.Before(cutoff) {
			delete(r.tasks, id)
		}
	}
}

package ws

import "time"

// ProgressEvent é o que o front recebe durante uma roteirização em
// andamento: etapa corrente, percentual e, ao final, conclusão ou erro.
type ProgressEvent struct {
	TaskID     string    `json:"task_id"`
	Etapa      string    `json:"etapa"`
	Percentual int       `json:"percentual"`
	Mensagem   string    `json:"mensagem,omitempty"`
	Erro       string    `json:"erro,omitempty"`
	Concluido  bool      `json:"concluido"`
	At         time.Time `json:"at"`
}

package workflow

import (
	"errors"
	"strings"
)

var ErrRoleDesconhecida = errors.New("role desconhecida")

// Canonical status labels. The substring before " - " is the owning
// department namespace.
const (
	StatusAtendimentoRecebido   = "Atendimento - Recebido"
	StatusAtendimentoOrcado     = "Atendimento - Orçado"
	StatusAtendimentoAprovado   = "Atendimento - Aprovado"
	StatusLavagemAFazer         = "Lavagem - A Fazer"
	StatusLavagemEmAndamento    = "Lavagem - Em Andamento"
	StatusLavagemConcluido      = "Lavagem - Concluído"
	StatusPinturaAFazer         = "Pintura - A Fazer"
	StatusPinturaEmAndamento    = "Pintura - Em Andamento"
	StatusPinturaConcluido      = "Pintura - Concluído"
	StatusAtendimentoFinalizado = "Atendimento - Finalizado"
	StatusAtendimentoEntregue   = "Atendimento - Entregue"
)

// Role is a closed, data-carrying description of what a user role may see and
// do. Adding a role is a data change here, not a code change elsewhere.
type Role struct {
	Name string

	// Namespace is the status prefix the role owns for transitions
	// ("Lavagem - "); empty for admin, which owns everything.
	Namespace string

	// Columns lists, in board order, the kanban columns the role sees.
	Columns []string

	// KanbanAll marks roles whose kanban view covers every order regardless
	// of namespace (admin, atendimento).
	KanbanAll bool

	// Sentinel is the single upstream status also visible on this role's
	// kanban, signaling work ready for pickup (pull-based hand-off).
	Sentinel string

	// LegacyStatuses is the allow-list used by the legacy assigned-orders
	// view. Roles without it are rejected by that view (except admin).
	LegacyStatuses []string
}

// Admin sees and transitions everything.
func (r Role) Admin() bool { return r.Name == "admin" }

var roles = map[string]Role{
	"admin": {
		Name:      "admin",
		KanbanAll: true,
		Columns: []string{
			StatusAtendimentoRecebido,
			StatusAtendimentoOrcado,
			StatusAtendimentoAprovado,
			StatusLavagemAFazer,
			StatusLavagemEmAndamento,
			StatusLavagemConcluido,
			StatusPinturaAFazer,
			StatusPinturaEmAndamento,
			StatusPinturaConcluido,
			StatusAtendimentoFinalizado,
			StatusAtendimentoEntregue,
		},
	},
	"atendimento": {
		Name:      "atendimento",
		Namespace: "Atendimento - ",
		KanbanAll: true,
		Columns: []string{
			StatusAtendimentoRecebido,
			StatusAtendimentoOrcado,
			StatusAtendimentoAprovado,
			StatusAtendimentoFinalizado,
			StatusAtendimentoEntregue,
		},
	},
	"lavagem": {
		Name:      "lavagem",
		Namespace: "Lavagem - ",
		Sentinel:  StatusAtendimentoAprovado,
		Columns: []string{
			StatusLavagemAFazer,
			StatusLavagemEmAndamento,
			StatusLavagemConcluido,
		},
	},
	"pintura": {
		Name:      "pintura",
		Namespace: "Pintura - ",
		Sentinel:  StatusLavagemConcluido,
		Columns: []string{
			StatusPinturaAFazer,
			StatusPinturaEmAndamento,
			StatusPinturaConcluido,
		},
	},

	// Legacy roles from the first deployment. They only exist for the
	// assigned-orders list; they have no kanban columns and cannot move
	// statuses.
	"colagem": {
		Name:           "colagem",
		LegacyStatuses: []string{"iniciado", "em-processamento"},
	},
	"lavanderia": {
		Name:           "lavanderia",
		LegacyStatuses: []string{"em-processamento", "finalizado"},
	},
}

// Lookup resolves a role by name, case-insensitively.
func Lookup(name string) (Role, bool) {
	r, ok := roles[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// Columns returns the ordered kanban column catalog for a role.
// Unknown or empty roles are forbidden.
func Columns(role string) ([]string, error) {
	r, ok := Lookup(role)
	if !ok || len(r.Columns) == 0 {
		return nil, ErrRoleDesconhecida
	}
	cols := make([]string, len(r.Columns))
	copy(cols, r.Columns)
	return cols, nil
}

package workflow

import (
	"slices"
	"strings"

	"sapataria_xpto/internal/domain/entities"
)

// FilterKanban returns the subset of pedidos visible on the role's board.
//
// admin and atendimento see everything. Department roles see their own
// namespace plus the hand-off sentinel: the one upstream status that means
// "ready for me" (Atendimento - Aprovado feeds lavagem, Lavagem - Concluído
// feeds pintura). Unknown roles and list-only legacy roles are forbidden.
func FilterKanban(role string, pedidos []entities.Pedido) ([]entities.Pedido, error) {
	r, ok := Lookup(role)
	if !ok || (!r.KanbanAll && r.Namespace == "") {
		return nil, ErrRoleDesconhecida
	}
	if r.KanbanAll {
		return pedidos, nil
	}

	out := make([]entities.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if strings.HasPrefix(p.Status, r.Namespace) || (r.Sentinel != "" && p.Status == r.Sentinel) {
			out = append(out, p)
		}
	}
	return out, nil
}

// FilterLegacy implements the first deployment's list policy: admin sees all;
// colagem/lavanderia see only orders assigned to them (clienteId equals the
// caller's user id, a quirk the old data model relied on) with a status in
// their fixed allow-list. Any other role is forbidden.
func FilterLegacy(role, userID string, pedidos []entities.Pedido) ([]entities.Pedido, error) {
	r, ok := Lookup(role)
	if !ok {
		return nil, ErrRoleDesconhecida
	}
	if r.Admin() {
		return pedidos, nil
	}
	if len(r.LegacyStatuses) == 0 {
		return nil, ErrRoleDesconhecida
	}

	out := make([]entities.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if p.ClienteID == userID && slices.Contains(r.LegacyStatuses, p.Status) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ColunaKanban is one board column with the orders currently in it.
type ColunaKanban struct {
	Status  string
	Pedidos []entities.Pedido
}

// AgruparColunas groups already-filtered pedidos into the role's ordered
// columns. Orders whose status matches no column (e.g. the hand-off sentinel
// for a department role) are appended under their own status at the end so
// the board never silently drops a visible order.
func AgruparColunas(role string, pedidos []entities.Pedido) ([]ColunaKanban, error) {
	cols, err := Columns(role)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(cols))
	out := make([]ColunaKanban, len(cols))
	for i, s := range cols {
		index[s] = i
		out[i] = ColunaKanban{Status: s, Pedidos: []entities.Pedido{}}
	}
	for _, p := range pedidos {
		i, ok := index[p.Status]
		if !ok {
			index[p.Status] = len(out)
			out = append(out, ColunaKanban{Status: p.Status, Pedidos: []entities.Pedido{}})
			i = len(out) - 1
		}
		out[i].Pedidos = append(out[i].Pedidos, p)
	}
	return out, nil
}

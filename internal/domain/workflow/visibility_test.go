package workflow

import (
	"errors"
	"strings"
	"testing"

	"sapataria_xpto/internal/domain/entities"
)

func pedidosFixture() []entities.Pedido {
	return []entities.Pedido{
		{ID: "p1", Status: StatusAtendimentoRecebido},
		{ID: "p2", Status: StatusAtendimentoAprovado},
		{ID: "p3", Status: StatusLavagemAFazer},
		{ID: "p4", Status: StatusLavagemConcluido},
		{ID: "p5", Status: StatusPinturaEmAndamento},
		{ID: "p6", Status: StatusAtendimentoEntregue},
	}
}

func TestFilterKanban(t *testing.T) {
	all := pedidosFixture()

	t.Run("admin and atendimento see all", func(t *testing.T) {
		for _, role := range []string{"admin", "atendimento"} {
			got, err := FilterKanban(role, all)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", role, err)
			}
			if len(got) != len(all) {
				t.Fatalf("%s: expected %d, got %d", role, len(all), len(got))
			}
		}
	})

	t.Run("lavagem sees namespace plus hand-off sentinel", func(t *testing.T) {
		got, err := FilterKanban("lavagem", all)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := map[string]bool{}
		for _, p := range got {
			ids[p.ID] = true
			if !strings.HasPrefix(p.Status, "Lavagem - ") && p.Status != StatusAtendimentoAprovado {
				t.Fatalf("order %s with status %q must not be visible", p.ID, p.Status)
			}
		}
		for _, want := range []string{"p2", "p3", "p4"} {
			if !ids[want] {
				t.Fatalf("expected %s visible, got %v", want, ids)
			}
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 visible orders, got %d", len(got))
		}
	})

	t.Run("pintura sees namespace plus Lavagem - Concluído", func(t *testing.T) {
		got, err := FilterKanban("pintura", all)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 visible orders, got %d", len(got))
		}
		for _, p := range got {
			if p.ID != "p4" && p.ID != "p5" {
				t.Fatalf("unexpected order %s (%s)", p.ID, p.Status)
			}
		}
	})

	t.Run("unknown and legacy roles forbidden", func(t *testing.T) {
		for _, role := range []string{"", "estoque", "colagem"} {
			if _, err := FilterKanban(role, all); !errors.Is(err, ErrRoleDesconhecida) {
				t.Fatalf("role %q: expected ErrRoleDesconhecida, got %v", role, err)
			}
		}
	})
}

func TestFilterLegacy(t *testing.T) {
	pedidos := []entities.Pedido{
		{ID: "p1", ClienteID: "u1", Status: "iniciado"},
		{ID: "p2", ClienteID: "u1", Status: "finalizado"},
		{ID: "p3", ClienteID: "u2", Status: "iniciado"},
		{ID: "p4", ClienteID: "u1", Status: "em-processamento"},
	}

	t.Run("admin sees all", func(t *testing.T) {
		got, err := FilterLegacy("admin", "u9", pedidos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(pedidos) {
			t.Fatalf("expected %d, got %d", len(pedidos), len(got))
		}
	})

	t.Run("colagem sees own orders in allow-list", func(t *testing.T) {
		got, err := FilterLegacy("colagem", "u1", pedidos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p4" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("lavanderia allow-list differs", func(t *testing.T) {
		got, err := FilterLegacy("lavanderia", "u1", pedidos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p2" || got[1].ID != "p4" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("workflow roles forbidden here", func(t *testing.T) {
		if _, err := FilterLegacy("lavagem", "u1", pedidos); !errors.Is(err, ErrRoleDesconhecida) {
			t.Fatalf("expected ErrRoleDesconhecida, got %v", err)
		}
	})
}

func TestAgruparColunas(t *testing.T) {
	filtered, err := FilterKanban("lavagem", pedidosFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cols, err := AgruparColunas("lavagem", filtered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three own columns plus the sentinel column appended at the end.
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	if cols[0].Status != StatusLavagemAFazer || len(cols[0].Pedidos) != 1 {
		t.Fatalf("unexpected first column: %+v", cols[0])
	}
	if cols[1].Status != StatusLavagemEmAndamento || len(cols[1].Pedidos) != 0 {
		t.Fatalf("empty columns must still be present: %+v", cols[1])
	}
	if cols[3].Status != StatusAtendimentoAprovado || len(cols[3].Pedidos) != 1 {
		t.Fatalf("sentinel orders must not be dropped: %+v", cols[3])
	}
}

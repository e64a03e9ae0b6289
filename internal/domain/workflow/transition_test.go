package workflow

import "testing"

func TestCanTransition_AdminAlwaysAllowed(t *testing.T) {
	statuses := []string{
		StatusAtendimentoRecebido,
		StatusLavagemEmAndamento,
		StatusPinturaConcluido,
		"Departamento Novo - Qualquer Coisa",
	}
	for _, s := range statuses {
		if !CanTransition("admin", s) {
			t.Fatalf("admin should transition to %q", s)
		}
	}
	if !CanTransition("ADMIN", StatusLavagemAFazer) {
		t.Fatalf("role matching must be case-insensitive")
	}
}

func TestCanTransition_NamespacePrefix(t *testing.T) {
	cases := []struct {
		role   string
		target string
		want   bool
	}{
		{"lavagem", StatusLavagemAFazer, true},
		{"lavagem", StatusLavagemEmAndamento, true},
		{"lavagem", StatusPinturaAFazer, false},
		{"lavagem", StatusAtendimentoAprovado, false},
		{"pintura", StatusPinturaEmAndamento, true},
		{"pintura", StatusLavagemConcluido, false},
		{"atendimento", StatusAtendimentoEntregue, true},
		{"atendimento", StatusLavagemAFazer, false},
		{"Lavagem", StatusLavagemConcluido, true},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.role, tc.target); got != tc.want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", tc.role, tc.target, got, tc.want)
		}
	}
}

func TestCanTransition_UnknownAndLegacyRoles(t *testing.T) {
	for _, role := range []string{"", "estoque", "colagem", "lavanderia"} {
		if CanTransition(role, StatusLavagemAFazer) {
			t.Fatalf("role %q must not transition statuses", role)
		}
	}
}

package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/domain/workflow"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPedidoNotFound        = errors.New("pedido not found")
	ErrInvalidPedidoID       = errors.New("invalid pedido id")
	ErrClienteObrigatorio    = errors.New("clienteId is required")
	ErrModeloObrigatorio     = errors.New("modeloTenis is required")
	ErrServicosObrigatorios  = errors.New("servicos must be a non-empty list")
	ErrServicoInvalido       = errors.New("servico must have id, nome and a non-negative preco")
	ErrStatusObrigatorio     = errors.New("status is required")
	ErrTransicaoNaoPermitida = errors.New("role cannot transition to this status")
	ErrNenhumCampo           = errors.New("no fields to update")
)

// DisallowedFieldsError rejects a partial update in full and names the
// offending fields back to the caller.
type DisallowedFieldsError struct {
	Fields []string
}

func (e *DisallowedFieldsError) Error() string {
	return "update contains disallowed fields: " + strings.Join(e.Fields, ", ")
}

// camposPermitidos is the allow-list of mutable Pedido fields for PATCH.
// Anything else (including id and timestamps) is rejected in full.
var camposPermitidos = map[string]struct{}{
	"servicos":            {},
	"fotos":               {},
	"precoTotal":          {},
	"valorSinal":          {},
	"valorRestante":       {},
	"dataPrevistaEntrega": {},
	"departamento":        {},
	"observacoes":         {},
	"garantia":            {},
	"acessorios":          {},
	"status":              {},
	"statusHistory":       {},
	"tipoServico":         {},
	"descricaoServicos":   {},
	"preco":               {},
}

// IPedidoUseCase exposes the order operations.
//
// Status changes (via Update or UpdateStatus) run the workflow authorizer and
// history recorder before persisting, then notify the customer best-effort.

type IPedidoUseCase interface {
	Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	GetByID(ctx context.Context, id string) (entities.Pedido, error)
	List(ctx context.Context) ([]entities.Pedido, error)
	ListKanban(ctx context.Context, role string) ([]workflow.ColunaKanban, error)
	ListAtribuidos(ctx context.Context, role, userID string) ([]entities.Pedido, error)
	Update(ctx context.Context, id string, fields map[string]any, role string, actor workflow.Actor) (entities.Pedido, error)
	UpdateStatus(ctx context.Context, id, status, role string, actor workflow.Actor) (entities.Pedido, error)
	Delete(ctx context.Context, id string) error
}

type PedidoUseCase struct {
	repo          interfaces.IPedidoRepository
	clienteRepo   interfaces.IClienteRepository
	notifier      interfaces.INotifier
	statusInicial string

	// notifySync makes notifications run inline; tests only.
	notifySync bool
}

var _ IPedidoUseCase = (*PedidoUseCase)(nil)

func NewPedidoUseCase(repo interfaces.IPedidoRepository, clienteRepo interfaces.IClienteRepository, notifier interfaces.INotifier, statusInicial string) *PedidoUseCase {
	if statusInicial == "" {
		statusInicial = "Atendimento - Aguardando Aprovação"
	}
	return &PedidoUseCase{repo: repo, clienteRepo: clienteRepo, notifier: notifier, statusInicial: statusInicial}
}

func (u *PedidoUseCase) Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	p.ClienteID = strings.TrimSpace(p.ClienteID)
	if p.ClienteID == "" {
		return entities.Pedido{}, ErrClienteObrigatorio
	}
	if strings.TrimSpace(p.ModeloTenis) == "" {
		return entities.Pedido{}, ErrModeloObrigatorio
	}
	if len(p.Servicos) == 0 {
		return entities.Pedido{}, ErrServicosObrigatorios
	}
	for _, s := range p.Servicos {
		if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Nome) == "" || s.Preco < 0 {
			return entities.Pedido{}, ErrServicoInvalido
		}
	}

	if p.PrecoTotal == 0 {
		for _, s := range p.Servicos {
			p.PrecoTotal += s.Preco
		}
	}
	if p.Status == "" {
		p.Status = u.statusInicial
	}
	if p.Departamento == "" {
		p.Departamento = "Atendimento"
	}
	if p.Fotos == nil {
		p.Fotos = []string{}
	}
	if p.Acessorios == nil {
		p.Acessorios = []string{}
	}
	if p.StatusHistory == nil {
		p.StatusHistory = []entities.StatusEntry{}
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.DataCriacao = now
	p.CreatedAt = now
	p.UpdatedAt = now

	return u.repo.Create(ctx, p)
}

func (u *PedidoUseCase) GetByID(ctx context.Context, id string) (entities.Pedido, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pedido{}, ErrInvalidPedidoID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if p.ID == "" {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	return p, nil
}

func (u *PedidoUseCase) List(ctx context.Context) ([]entities.Pedido, error) {
	return u.repo.List(ctx)
}

func (u *PedidoUseCase) ListKanban(ctx context.Context, role string) ([]workflow.ColunaKanban, error) {
	pedidos, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visiveis, err := workflow.FilterKanban(role, pedidos)
	if err != nil {
		return nil, err
	}
	return workflow.AgruparColunas(role, visiveis)
}

func (u *PedidoUseCase) ListAtribuidos(ctx context.Context, role, userID string) ([]entities.Pedido, error) {
	pedidos, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return workflow.FilterLegacy(role, userID, pedidos)
}

func (u *PedidoUseCase) Update(ctx context.Context, id string, fields map[string]any, role string, actor workflow.Actor) (entities.Pedido, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pedido{}, ErrInvalidPedidoID
	}
	if len(fields) == 0 {
		return entities.Pedido{}, ErrNenhumCampo
	}

	var rejeitados []string
	for k := range fields {
		if _, ok := camposPermitidos[k]; !ok {
			rejeitados = append(rejeitados, k)
		}
	}
	if len(rejeitados) > 0 {
		sort.Strings(rejeitados)
		return entities.Pedido{}, &DisallowedFieldsError{Fields: rejeitados}
	}

	atual, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if atual.ID == "" {
		return entities.Pedido{}, ErrPedidoNotFound
	}

	statusChanged := false
	if raw, ok := fields["status"]; ok {
		novo, _ := raw.(string)
		novo = strings.TrimSpace(novo)
		if novo == "" {
			return entities.Pedido{}, ErrStatusObrigatorio
		}
		if novo != atual.Status {
			if !workflow.CanTransition(role, novo) {
				return entities.Pedido{}, ErrTransicaoNaoPermitida
			}
			fields["status"] = novo
			fields["statusHistory"] = workflow.RecordTransition(atual.StatusHistory, novo, actor, time.Now())
			statusChanged = true
		}
	}

	fields["updatedAt"] = time.Now().UTC()

	atualizado, err := u.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return entities.Pedido{}, err
	}
	if atualizado.ID == "" {
		return entities.Pedido{}, ErrPedidoNotFound
	}

	if statusChanged {
		u.notificarStatus(atualizado)
	}
	return atualizado, nil
}

func (u *PedidoUseCase) UpdateStatus(ctx context.Context, id, status, role string, actor workflow.Actor) (entities.Pedido, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Pedido{}, ErrStatusObrigatorio
	}
	return u.Update(ctx, id, map[string]any{"status": status}, role, actor)
}

func (u *PedidoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPedidoID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPedidoNotFound
	}
	return nil
}

// notificarStatus sends the WhatsApp update off the request's critical path.
// The status change is already committed; failures here are logged and
// swallowed, never surfaced to the HTTP caller.
func (u *PedidoUseCase) notificarStatus(p entities.Pedido) {
	if u.notifier == nil {
		return
	}
	send := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		cliente, err := u.clienteRepo.GetByID(ctx, p.ClienteID)
		if err != nil {
			log.Printf("[pedido][notify] cliente lookup failed pedido_id=%s cliente_id=%s err=%v", p.ID, p.ClienteID, err)
			return
		}
		if cliente.ID == "" || cliente.Telefone == "" {
			log.Printf("[pedido][notify] cliente sem telefone pedido_id=%s cliente_id=%s", p.ID, p.ClienteID)
			return
		}
		if err := u.notifier.EnviarStatusPedido(ctx, cliente.Telefone, cliente.Nome, p.Status, p.DescricaoResumida(), p.ModeloTenis); err != nil {
			log.Printf("[pedido][notify] envio falhou pedido_id=%s err=%v", p.ID, err)
		}
	}
	if u.notifySync {
		send()
		return
	}
	go send()
}

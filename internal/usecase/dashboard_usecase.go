package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"
)

var ErrInvalidUserID = errors.New("invalid user id")

// DashboardStats are the headline counters of the board.
type DashboardStats struct {
	TotalClients   int `json:"totalClients"`
	ActiveOrders   int `json:"activeOrders"`
	PendingOrders  int `json:"pendingOrders"`
	CompletedToday int `json:"completedToday"`
}

// RecentOrder is a pedido projected with its cliente for the dashboard list.
type RecentOrder struct {
	ID            string                 `json:"id"`
	ClientName    string                 `json:"clientName"`
	ClientCPF     string                 `json:"clientCpf"`
	Sneaker       string                 `json:"sneaker"`
	ServiceType   string                 `json:"serviceType"`
	Description   string                 `json:"description"`
	Price         float64                `json:"price"`
	Status        string                 `json:"status"`
	CreatedDate   string                 `json:"createdDate"`
	ExpectedDate  string                 `json:"expectedDate"`
	StatusHistory []entities.StatusEntry `json:"statusHistory"`
}

// DashboardUser describes the caller and its coarse permissions.
type DashboardUser struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// DashboardData is the full read-only aggregation returned by GET /dashboard.
type DashboardData struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []RecentOrder  `json:"recentOrders"`
	User         DashboardUser  `json:"user"`
}

const recentOrdersLimit = 10

// Legacy status values still counted by the dashboard; old records keep them.
const (
	statusLegadoProcessando = "em-processamento"
	statusLegadoIniciado    = "iniciado"
	statusLegadoFinalizado  = "finalizado"
)

type IDashboardUseCase interface {
	GetDashboard(ctx context.Context, userID string) (DashboardData, error)
}

type DashboardUseCase struct {
	pedidos       interfaces.IPedidoRepository
	clientes      interfaces.IClienteRepository
	users         interfaces.IUserRepository
	statusInicial string
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(pedidos interfaces.IPedidoRepository, clientes interfaces.IClienteRepository, users interfaces.IUserRepository, statusInicial string) *DashboardUseCase {
	if statusInicial == "" {
		statusInicial = "Atendimento - Aguardando Aprovação"
	}
	return &DashboardUseCase{pedidos: pedidos, clientes: clientes, users: users, statusInicial: statusInicial}
}

func (u *DashboardUseCase) GetDashboard(ctx context.Context, userID string) (DashboardData, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DashboardData{}, ErrInvalidUserID
	}

	stats, err := u.stats(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	recent, err := u.recentOrders(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return DashboardData{}, err
	}
	dashUser := DashboardUser{Name: "Usuário", Role: "funcionario"}
	if user.ID != "" {
		dashUser.Name = user.Nome
		dashUser.Role = user.Role
	}
	dashUser.Permissions = permissionsForRole(dashUser.Role)

	return DashboardData{Stats: stats, RecentOrders: recent, User: dashUser}, nil
}

func (u *DashboardUseCase) stats(ctx context.Context) (DashboardStats, error) {
	clientes, err := u.clientes.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	active, err := u.pedidos.CountByStatus(ctx, statusLegadoProcessando)
	if err != nil {
		return DashboardStats{}, err
	}
	pendingLegado, err := u.pedidos.CountByStatus(ctx, statusLegadoIniciado)
	if err != nil {
		return DashboardStats{}, err
	}
	pendingAtual, err := u.pedidos.CountByStatus(ctx, u.statusInicial)
	if err != nil {
		return DashboardStats{}, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	completedToday, err := u.pedidos.CountByStatusAndDay(ctx, statusLegadoFinalizado, today)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalClients:   len(clientes),
		ActiveOrders:   active,
		PendingOrders:  pendingLegado + pendingAtual,
		CompletedToday: completedToday,
	}, nil
}

func (u *DashboardUseCase) recentOrders(ctx context.Context) ([]RecentOrder, error) {
	pedidos, err := u.pedidos.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(pedidos, func(i, j int) bool {
		return pedidos[i].CreatedAt.After(pedidos[j].CreatedAt)
	})
	if len(pedidos) > recentOrdersLimit {
		pedidos = pedidos[:recentOrdersLimit]
	}

	out := make([]RecentOrder, 0, len(pedidos))
	for _, p := range pedidos {
		clientName := "Cliente não encontrado"
		clientCPF := ""
		cliente, err := u.clientes.GetByID(ctx, p.ClienteID)
		if err != nil {
			log.Printf("[dashboard][usecase] cliente lookup failed pedido_id=%s cliente_id=%s err=%v", p.ID, p.ClienteID, err)
		} else if cliente.ID != "" {
			clientName = cliente.Nome
			clientCPF = cliente.CPF
		}

		serviceType := p.TipoServico
		if serviceType == "" && len(p.Servicos) > 0 {
			serviceType = p.Servicos[0].Nome
		}
		if serviceType == "" {
			serviceType = "Não especificado"
		}
		description := p.DescricaoServicos
		if description == "" {
			description = p.Observacoes
		}
		price := p.Preco
		if price == 0 {
			price = p.PrecoTotal
		}

		out = append(out, RecentOrder{
			ID:            p.ID,
			ClientName:    clientName,
			ClientCPF:     clientCPF,
			Sneaker:       p.ModeloTenis,
			ServiceType:   serviceType,
			Description:   description,
			Price:         price,
			Status:        p.Status,
			CreatedDate:   p.CreatedAt.Format("2006-01-02"),
			ExpectedDate:  p.DataPrevistaEntrega,
			StatusHistory: p.StatusHistory,
		})
	}
	return out, nil
}

func permissionsForRole(role string) []string {
	switch role {
	case "admin":
		return []string{"view_all", "create_orders", "manage_clients", "view_reports"}
	case "funcionario":
		return []string{"view_all", "create_orders"}
	default:
		return []string{"view_all"}
	}
}

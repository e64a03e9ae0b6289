package interfaces

import "context"

// INotifier abstracts the customer messaging channel (WhatsApp Cloud API).
//
// Delivery is best-effort: callers log the returned error and never let it
// roll back an already-committed status change.

type INotifier interface {
	EnviarStatusPedido(ctx context.Context, telefone, nomeCliente, status, descricaoServicos, modeloTenis string) error
}

package interfaces

import "context"

// StoredObject is one blob under a storage prefix.
type StoredObject struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// IBlobStorage abstracts S3 for order photos and generated documents.
//
// Keys are namespaced per client/order, e.g.
// clientes/{clienteId}/pedidos/{pedidoId}/pedido-...pdf.

type IBlobStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (url string, err error)
	List(ctx context.Context, prefix string) ([]StoredObject, error)
	Delete(ctx context.Context, key string) error
}

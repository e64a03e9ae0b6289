package request

import "encoding/json"

// SinalRequest carries the deposit value and the raw Mercado Pago payment
// payload produced by the checkout brick on the frontend.
type SinalRequest struct {
	Valor     float64         `json:"valor"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sapataria_xpto/internal/usecase/interfaces"
	"sapataria_xpto/pkg/sanitize"

	"github.com/go-resty/resty/v2"
)

const graphAPIBase = "https://graph.facebook.com/v19.0"

var ErrWhatsAppRejeitado = errors.New("whatsapp api rejected the message")

// WhatsAppNotifier sends order status updates through the Meta WhatsApp
// Cloud API.
//
// Env vars:
//   - WHATSAPP_TOKEN
//   - WHATSAPP_PHONE_NUMBER_ID
//
// When unconfigured the notifier is a no-op: status changes must never fail
// because messaging is off in an environment.

type WhatsAppNotifier struct {
	client        *resty.Client
	token         string
	phoneNumberID string
}

var _ interfaces.INotifier = (*WhatsAppNotifier)(nil)

func NewWhatsAppNotifier() *WhatsAppNotifier {
	n := &WhatsAppNotifier{
		client:        resty.New().SetTimeout(10 * time.Second),
		token:         os.Getenv("WHATSAPP_TOKEN"),
		phoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
	}
	if !n.configured() {
		log.Printf("[whatsapp] api nao configurada (WHATSAPP_TOKEN/WHATSAPP_PHONE_NUMBER_ID ausentes)")
	}
	return n
}

func (n *WhatsAppNotifier) configured() bool {
	return n.token != "" && n.phoneNumberID != ""
}

func (n *WhatsAppNotifier) EnviarStatusPedido(ctx context.Context, telefone, nomeCliente, status, descricaoServicos, modeloTenis string) error {
	if !n.configured() {
		log.Printf("[whatsapp] envio ignorado (nao configurado) telefone=%s status=%q", telefone, status)
		return nil
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                telefone,
	}
	for k, v := range mensagemStatusPedido(nomeCliente, status, descricaoServicos, modeloTenis) {
		payload[k] = v
	}

	url := fmt.Sprintf("%s/%s/messages", graphAPIBase, n.phoneNumberID)
	start := time.Now()
	resp, err := n.client.R().
		SetContext(ctx).
		SetAuthToken(n.token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		log.Printf("[whatsapp] envio falhou telefone=%s status=%q err=%v", telefone, status, err)
		return err
	}
	if resp.IsError() {
		log.Printf("[whatsapp] api recusou telefone=%s status=%q http=%d body=%s", telefone, status, resp.StatusCode(), resp.String())
		return fmt.Errorf("%w: http %d", ErrWhatsAppRejeitado, resp.StatusCode())
	}

	log.Printf("[whatsapp] mensagem enviada telefone=%s status=%q duracao=%s", telefone, status, time.Since(start))
	return nil
}

// mensagemStatusPedido picks the approved template for the status phase, or a
// plain-text message for statuses without one.
func mensagemStatusPedido(nomeCliente, status, descricaoServicos, modeloTenis string) map[string]any {
	switch fase(status) {
	case "concluido", "finalizado":
		return templateMessage("order_status_update_finish", nomeCliente, descricaoServicos, modeloTenis)
	case "em andamento", "em_andamento":
		return templateMessage("update_status_in_progress", nomeCliente, descricaoServicos, modeloTenis)
	case "cancelado", "cancelada":
		return textMessage(fmt.Sprintf(
			"Olá, %s.\n\nInfelizmente, o pedido de *%s* para o *%s* foi cancelado. "+
				"Se precisar de mais informações ou quiser reabrir o pedido, estamos à disposição.",
			nomeCliente, descricaoServicos, modeloTenis))
	default:
		return textMessage(fmt.Sprintf(
			"Olá, %s! 😊\n\nTemos novidades sobre o seu pedido de *%s* para o *%s*.\n"+
				"O status agora é: *%s*.\n\n"+
				"Se tiver dúvidas ou precisar de mais informações, estamos à disposição!\n\n"+
				"Obrigado por confiar no nosso serviço.",
			nomeCliente, descricaoServicos, modeloTenis, status))
	}
}

// fase extracts the lowercased, accent-free phase of a namespaced status
// ("Lavagem - Concluído" -> "concluido"); bare legacy statuses pass through.
func fase(status string) string {
	if i := strings.LastIndex(status, " - "); i >= 0 {
		status = status[i+len(" - "):]
	}
	return strings.ToLower(sanitize.String(status))
}

func templateMessage(name, nomeCliente, descricaoServicos, modeloTenis string) map[string]any {
	params := make([]map[string]any, 0, 3)
	for _, text := range []string{nomeCliente, descricaoServicos, modeloTenis} {
		params = append(params, map[string]any{"type": "text", "text": text})
	}
	return map[string]any{
		"type": "template",
		"template": map[string]any{
			"name":     name,
			"language": map[string]any{"code": "pt_BR"},
			"components": []map[string]any{
				{"type": "body", "parameters": params},
			},
		},
	}
}

func textMessage(body string) map[string]any {
	return map[string]any{
		"type": "text",
		"text": map[string]any{"body": body},
	}
}

package entities

// Cliente is the customer contact/address record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pedido references Cliente by clienteId only; deleting a cliente does not
// cascade to its pedidos.
type Cliente struct {
	ID          string `json:"id" dynamodbav:"id"`
	Nome        string `json:"nome" dynamodbav:"nome"`
	CPF         string `json:"cpf" dynamodbav:"cpf"`
	Telefone    string `json:"telefone" dynamodbav:"telefone"`
	Email       string `json:"email" dynamodbav:"email"`
	CEP         string `json:"cep" dynamodbav:"cep"`
	Logradouro  string `json:"logradouro" dynamodbav:"logradouro"`
	Numero      string `json:"numero" dynamodbav:"numero"`
	Bairro      string `json:"bairro" dynamodbav:"bairro"`
	Cidade      string `json:"cidade" dynamodbav:"cidade"`
	Estado      string `json:"estado" dynamodbav:"estado"`
	Complemento string `json:"complemento,omitempty" dynamodbav:"complemento"`
	Observacoes string `json:"observacoes,omitempty" dynamodbav:"observacoes"`
}

// EnderecoCompleto joins the filled address parts for display (PDF, listings).
func (c Cliente) EnderecoCompleto() string {
	parts := make([]string, 0, 6)
	if c.Logradouro != "" {
		parts = append(parts, c.Logradouro)
	}
	if c.Numero != "" {
		parts = append(parts, "nº "+c.Numero)
	}
	if c.Bairro != "" {
		parts = append(parts, c.Bairro)
	}
	if c.Cidade != "" {
		parts = append(parts, c.Cidade)
	}
	if c.Estado != "" {
		parts = append(parts, c.Estado)
	}
	if c.CEP != "" {
		parts = append(parts, "CEP: "+c.CEP)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

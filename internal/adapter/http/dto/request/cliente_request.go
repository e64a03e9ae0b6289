package request

import "sapataria_xpto/internal/domain/entities"

type ClienteRequest struct {
	Nome        string `json:"nome" binding:"required"`
	CPF         string `json:"cpf"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Complemento string `json:"complemento"`
	Observacoes string `json:"observacoes"`
}

func (r ClienteRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		Nome:        r.Nome,
		CPF:         r.CPF,
		Telefone:    r.Telefone,
		Email:       r.Email,
		CEP:         r.CEP,
		Logradouro:  r.Logradouro,
		Numero:      r.Numero,
		Bairro:      r.Bairro,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		Complemento: r.Complemento,
		Observacoes: r.Observacoes,
	}
}

package model

// Cliente is a customer of the shop. A hidden client keeps its row
// (Ativo=false) together with the reason it was hidden.
type Cliente struct {
	ID            int     `json:"id_cliente"`
	Nome          string  `json:"nome"`
	CPF           string  `json:"cpf"`
	Telefone      string  `json:"telefone"`
	Endereco      string  `json:"endereco"`
	Email         string  `json:"email"`
	Ativo         bool    `json:"ativo"`
	MotivoInativo *string `json:"motivo_inativo"`
}

// CreateClienteRequest is the payload of POST /adicionarClientes.
// Every field is required and must be non-empty.
type CreateClienteRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
	Endereco string `json:"endereco" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// UpdateClienteRequest is the payload of PUT /editarClients/:id.
// Email is optional; when absent the stored value is kept.
type UpdateClienteRequest struct {
	Nome     string  `json:"nome" binding:"required"`
	CPF      string  `json:"cpf" binding:"required"`
	Telefone string  `json:"telefone" binding:"required"`
	Endereco string  `json:"endereco" binding:"required"`
	Email    *string `json:"email"`
}

// HideClienteRequest is the payload of PUT /ocultarClient/:id.
type HideClienteRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}

// DadosCliente is the composite view served by GET /dados_cliente/:cpf.
// Vehicle and order parts fall back to empty strings when the client has
// no vehicle or the vehicle has no service order yet.
type DadosCliente struct {
	Nome         string            `json:"nome"`
	CPF          string            `json:"cpf"`
	Veiculo      DadosVeiculo      `json:"veiculo"`
	OrdemServico DadosOrdemServico `json:"ordem_servico"`
}

type DadosVeiculo struct {
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
}

type DadosOrdemServico struct {
	Status         string `json:"status"`
	DataAbertura   string `json:"data_abertura"`
	DataFechamento string `json:"data_fechamento"`
}

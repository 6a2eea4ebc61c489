package model

import (
	"encoding/json"
	"time"
)

// OrderTimeLayout is the legacy wire format for service-order timestamps.
const OrderTimeLayout = "02-01-2006 15:04"

// OrdemServico is one unit of work on a vehicle. DataFechamento is set
// exactly when the status is terminal (see ParseStatus); both timestamps are
// naive local times in America/Sao_Paulo.
type OrdemServico struct {
	ID               int
	VeiculoID        int
	DataAbertura     time.Time
	DescricaoServico string
	Status           string
	ValorEstimado    float64
	DataFechamento   *time.Time
}

// MarshalJSON renders timestamps in the legacy "dd-mm-yyyy hh:mm" format,
// with null for an open order's closing time.
func (o OrdemServico) MarshalJSON() ([]byte, error) {
	var fechamento *string
	if o.DataFechamento != nil {
		s := o.DataFechamento.Format(OrderTimeLayout)
		fechamento = &s
	}
	return json.Marshal(struct {
		ID               int     `json:"id_servico"`
		VeiculoID        int     `json:"veiculo_id"`
		DataAbertura     string  `json:"data_abertura"`
		DescricaoServico string  `json:"descricao_servico"`
		Status           string  `json:"status"`
		ValorEstimado    float64 `json:"valor_estimado"`
		DataFechamento   *string `json:"data_fechamento"`
	}{
		ID:               o.ID,
		VeiculoID:        o.VeiculoID,
		DataAbertura:     o.DataAbertura.Format(OrderTimeLayout),
		DescricaoServico: o.DescricaoServico,
		Status:           o.Status,
		ValorEstimado:    o.ValorEstimado,
		DataFechamento:   fechamento,
	})
}

// CreateOrdemRequest is the payload of POST /adicionarOrdemServico.
// DataAbertura is stamped server-side at creation time. ValorEstimado is a
// pointer so a zero estimate still satisfies the presence check.
type CreateOrdemRequest struct {
	VeiculoID        int      `json:"veiculo_id" binding:"required"`
	DescricaoServico string   `json:"descricao_servico" binding:"required"`
	Status           string   `json:"status" binding:"required"`
	ValorEstimado    *float64 `json:"valor_estimado" binding:"required"`
}

// UpdateOrdemRequest is the payload of PUT /editarServico/:id. DataAbertura
// is optional and accepts either a full timestamp or a date-only string.
type UpdateOrdemRequest struct {
	DataAbertura     string   `json:"data_abertura"`
	DescricaoServico string   `json:"descricao_servico" binding:"required"`
	Status           string   `json:"status" binding:"required"`
	ValorEstimado    *float64 `json:"valor_estimado" binding:"required"`
}

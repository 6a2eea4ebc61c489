package model

// Veiculo belongs to exactly one Cliente. The plate is unique across the
// whole fleet; uniqueness is enforced by the storage constraint only
// (there is no application-level pre-check, unlike clients).
type Veiculo struct {
	ID            int    `json:"id_veiculo"`
	ClienteID     int    `json:"cliente_id"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Placa         string `json:"placa"`
	AnoFabricacao int    `json:"ano_fabricacao"`
}

// CreateVeiculoRequest is the payload of POST /adicionarVeiculo.
type CreateVeiculoRequest struct {
	ClienteID     int    `json:"cliente_id" binding:"required"`
	Marca         string `json:"marca" binding:"required"`
	Modelo        string `json:"modelo" binding:"required"`
	Placa         string `json:"placa" binding:"required"`
	AnoFabricacao int    `json:"ano_fabricacao" binding:"required"`
}

// UpdateVeiculoRequest is the payload of PUT /editarVeiculos/:id.
type UpdateVeiculoRequest struct {
	Marca         string `json:"marca" binding:"required"`
	Modelo        string `json:"modelo" binding:"required"`
	Placa         string `json:"placa" binding:"required"`
	AnoFabricacao int    `json:"ano_fabricacao" binding:"required"`
}

// internal/ficha/dto.go
package ficha

// DTOs de entrada da ficha. Datas chegam como "2006-01-02", o mesmo formato
// do campo de data do formulário.

type ParcelaSalaDTO struct {
	Tipo             string   `json:"tipo"`
	ValorTotal       float64  `json:"valorTotal"`
	ValorDistribuido float64  `json:"valorDistribuido"`
	QuantidadeCotas  int      `json:"quantidadeCotas"`
	FormasPagamento  []string `json:"formasPagamento"`
}

type ContratoDTO struct {
	TipoContrato     string  `json:"tipoContrato"`
	EmpreendimentoID uint    `json:"empreendimentoId"`
	Torre            string  `json:"torre"`
	Apartamento      string  `json:"apartamento"`
	Cota             string  `json:"cota"`
	CategoriaPreco   string  `json:"categoriaPreco"`
	Valor            float64 `json:"valor"`
}

type InformacaoPagamentoDTO struct {
	Tipo               string  `json:"tipo"`
	Total              float64 `json:"total"`
	QtdParcelas        int     `json:"qtdParcelas"`
	ValorParcela       float64 `json:"valorParcela"`
	FormaPagamento     string  `json:"formaPagamento"`
	PrimeiroVencimento string  `json:"primeiroVencimento"`
}

type CriarFichaDTO struct {
	ClienteID    uint                     `json:"clienteId"`
	Liner        string                   `json:"liner"`
	Closer       string                   `json:"closer"`
	TipoVenda    string                   `json:"tipoVenda"`
	ParcelasSala []ParcelaSalaDTO         `json:"parcelasSala"`
	Contratos    []ContratoDTO            `json:"contratos"`
	Informacoes  []InformacaoPagamentoDTO `json:"informacoesPagamento"`
}

// SimularDTO é o estado do formulário enviado para normalização: a resposta
// devolve o plano recalculado e os alertas vigentes, sem persistir nada.
type SimularDTO struct {
	ParcelasSala []ParcelaSalaDTO         `json:"parcelasSala"`
	Contratos    []ContratoDTO            `json:"contratos"`
	Informacoes  []InformacaoPagamentoDTO `json:"informacoesPagamento"`
}

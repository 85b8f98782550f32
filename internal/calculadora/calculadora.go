// internal/calculadora/calculadora.go
package calculadora

// Regras de recálculo do plano de pagamento. Todas as operações são síncronas
// e livres de I/O: alteram o plano em memória e devolvem o que foi aceito.

// RecalcularRestanteEntrada refaz o Restante da Entrada a partir do alvo de
// entrada do empreendimento: restante = alvo − Σ(entradas numeradas).
// Restante não positivo zera a linha e força qtdParcelas = 1.
func (p *Plano) RecalcularRestanteEntrada(valorEntrada float64) {
	restanteInfo := p.RestanteEntrada()
	if restanteInfo == nil {
		return
	}

	restante := valorEntrada - p.TotalEntradas()
	if restante > 0 {
		qtd := restanteInfo.QtdParcelas
		if qtd < 1 {
			qtd = 1
		}
		restanteInfo.Total = restante
		restanteInfo.ValorParcela = dividirParcela(restante, qtd)
		return
	}

	restanteInfo.Total = 0
	restanteInfo.ValorParcela = 0
	restanteInfo.QtdParcelas = 1
}

// AplicarValorDistribuido clona o valor distribuído de uma parcela paga em
// sala para a 1ª Entrada (total e valor de parcela iguais, uma parcela) e
// aproveita a primeira forma de pagamento caso a linha ainda não tenha uma.
// Em seguida o Restante da Entrada é recalculado.
func (p *Plano) AplicarValorDistribuido(parcela ParcelaPagaSala, valorEntrada float64) {
	primeira := p.PrimeiraEntrada()
	if primeira != nil {
		primeira.Total = parcela.ValorDistribuido
		primeira.ValorParcela = parcela.ValorDistribuido
		primeira.QtdParcelas = 1
		if primeira.FormaPagamento == "" && len(parcela.FormasPagamento) > 0 {
			primeira.FormaPagamento = parcela.FormasPagamento[0]
		}
	}
	p.RecalcularRestanteEntrada(valorEntrada)
}

// PreencherPorCategoria aplica os totais e quantidades máximas da categoria
// nas linhas de Sinal e Saldo. A 1ª Entrada fica de fora: ela é alimentada
// apenas pelo valor distribuído em sala.
func (p *Plano) PreencherPorCategoria(dados DadosCategoria) {
	if sinal := p.Sinal(); sinal != nil {
		sinal.Total = dados.ValorSinal
		sinal.QtdParcelas = dados.MaxParcelasSinal
		sinal.ValorParcela = dividirParcela(dados.ValorSinal, dados.MaxParcelasSinal)
	}
	if saldo := p.Saldo(); saldo != nil {
		saldo.Total = dados.ValorSaldo
		saldo.QtdParcelas = dados.MaxParcelasSaldo
		saldo.ValorParcela = dividirParcela(dados.ValorSaldo, dados.MaxParcelasSaldo)
	}
}

// maxParcelas devolve o teto de parcelas da linha, se houver: Sinal e Saldo
// seguem a categoria ativa do contrato, Restante da Entrada tem teto fixo.
func maxParcelas(info *InformacaoPagamento, dados *DadosCategoria) int {
	switch info.Tipo {
	case ParcelaRestanteEntrada:
		return MaxParcelasRestante
	case ParcelaSinal:
		if dados != nil {
			return dados.MaxParcelasSinal
		}
	case ParcelaSaldo:
		if dados != nil {
			return dados.MaxParcelasSaldo
		}
	}
	return 0
}

// DefinirTotal grava um novo total na parcela e recalcula o valor da parcela.
// Totais negativos são sempre rejeitados. Para a 1ª Entrada, valores não nulos
// abaixo de R$ 1.000 também são rejeitados em silêncio: a edição é ignorada e
// o estado anterior permanece. Retorna se a edição valeu.
func (p *Plano) DefinirTotal(id string, total float64) bool {
	info := p.BuscarPorID(id)
	if info == nil {
		return false
	}
	if total < 0 {
		return false
	}
	if info.EhPrimeiraEntrada() && total != 0 && total < 1000 {
		return false
	}

	info.Total = total
	if info.QtdParcelas > 0 {
		info.ValorParcela = dividirParcela(total, info.QtdParcelas)
	}
	return true
}

// DefinirQtdParcelas grava uma nova quantidade de parcelas respeitando o teto
// da linha; acima do teto a edição é ignorada em silêncio. Quando aceita, o
// valor da parcela é recalculado a partir do total vigente.
func (p *Plano) DefinirQtdParcelas(id string, qtd int, dados *DadosCategoria) bool {
	info := p.BuscarPorID(id)
	if info == nil {
		return false
	}
	if teto := maxParcelas(info, dados); teto > 0 && qtd > teto {
		return false
	}

	info.QtdParcelas = qtd
	if info.Total > 0 && qtd > 0 {
		info.ValorParcela = dividirParcela(info.Total, qtd)
	}
	return true
}

// internal/calculadora/datas.go
package calculadora

import "time"

// CalcularDataInteligente soma meses à data base e devolve sempre o dia 15 do
// mês resultante, independente do dia original.
func CalcularDataInteligente(base time.Time, meses int) time.Time {
	ano, mes := base.Year(), int(base.Month())

	mes += meses
	for mes > 12 {
		mes -= 12
		ano++
	}

	return time.Date(ano, time.Month(mes), 15, 0, 0, 0, 0, base.Location())
}

// AtualizarDatasInteligentes deriva os primeiros vencimentos de Sinal e Saldo
// a partir do vencimento do Restante da Entrada:
//
//	sinal = restante + qtdParcelasRestante meses
//	saldo = sinal + qtdParcelasSinal meses (mínimo 1)
//
// Nada acontece sem vencimento do restante ou com quantidade de parcelas zero.
func (p *Plano) AtualizarDatasInteligentes(dataRestante time.Time, qtdRestante, qtdSinal int) {
	if dataRestante.IsZero() || qtdRestante <= 0 {
		return
	}

	dataSinal := CalcularDataInteligente(dataRestante, qtdRestante)
	if qtdSinal < 1 {
		qtdSinal = 1
	}
	dataSaldo := CalcularDataInteligente(dataSinal, qtdSinal)

	if sinal := p.Sinal(); sinal != nil {
		sinal.PrimeiroVencimento = dataSinal
	}
	if saldo := p.Saldo(); saldo != nil {
		saldo.PrimeiroVencimento = dataSaldo
	}
}

// DefinirPrimeiroVencimento grava o vencimento de uma parcela. Quando a linha
// é o Restante da Entrada, Sinal e Saldo são rederivados na sequência.
func (p *Plano) DefinirPrimeiroVencimento(id string, data time.Time) bool {
	info := p.BuscarPorID(id)
	if info == nil {
		return false
	}
	info.PrimeiroVencimento = data

	if info.Tipo == ParcelaRestanteEntrada {
		qtdRestante := info.QtdParcelas
		if qtdRestante < 1 {
			qtdRestante = 1
		}
		qtdSinal := 1
		if sinal := p.Sinal(); sinal != nil && sinal.QtdParcelas > 0 {
			qtdSinal = sinal.QtdParcelas
		}
		p.AtualizarDatasInteligentes(data, qtdRestante, qtdSinal)
	}
	return true
}

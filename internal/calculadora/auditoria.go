// internal/calculadora/auditoria.go
package calculadora

import "fmt"

// Auditoria é o resultado da conferência manual de valores da ficha.
type Auditoria struct {
	Valida   bool   `json:"valida"`
	Detalhes string `json:"detalhes"`
}

// AuditoriaValores confere se o valor do contrato ativo fecha com a soma das
// entradas, do sinal e do saldo, com tolerância de um centavo para erros de
// arredondamento. É um auxiliar de conferência: não bloqueia a gravação.
func (p *Plano) AuditoriaValores(valorContrato float64) Auditoria {
	totalEntradas := p.TotalEntradas()
	if restante := p.RestanteEntrada(); restante != nil {
		totalEntradas += restante.Total
	}

	var valorSinal, valorSaldo float64
	if sinal := p.Sinal(); sinal != nil {
		valorSinal = sinal.Total
	}
	if saldo := p.Saldo(); saldo != nil {
		valorSaldo = saldo.Total
	}

	diferenca := valorContrato - (totalEntradas + valorSinal + valorSaldo)
	if diferenca < 0 {
		diferenca = -diferenca
	}

	return Auditoria{
		Valida: diferenca < 0.01,
		Detalhes: fmt.Sprintf(
			"Valor Total: R$ %.2f | Entradas: R$ %.2f | Sinal: R$ %.2f | Saldo: R$ %.2f | Diferença: R$ %.2f",
			valorContrato, totalEntradas, valorSinal, valorSaldo, diferenca,
		),
	}
}

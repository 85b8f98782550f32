// internal/calculadora/plano.go
package calculadora

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxParcelasRestante é o teto fixo de parcelas do Restante da Entrada,
// independente da categoria.
const MaxParcelasRestante = 5

// Empreendimentos com valor de entrada diferenciado.
var empreendimentosEspeciais = []string{"Gran Garden", "Gran Valley"}

// ErrParcelaProtegida indica tentativa de remover uma das cinco linhas fixas.
var ErrParcelaProtegida = errors.New("parcela protegida não pode ser removida")

// Plano agrega as informações de pagamento de uma ficha.
type Plano struct {
	Informacoes []InformacaoPagamento
}

// NovoPlano monta o plano inicial: 1ª Entrada, Restante da Entrada,
// 2ª Entrada, Sinal e Saldo, nessa ordem.
func NovoPlano() *Plano {
	return &Plano{Informacoes: []InformacaoPagamento{
		{ID: uuid.NewString(), Tipo: ParcelaEntrada, Numero: 1},
		{ID: uuid.NewString(), Tipo: ParcelaRestanteEntrada},
		{ID: uuid.NewString(), Tipo: ParcelaEntrada, Numero: 2},
		{ID: uuid.NewString(), Tipo: ParcelaSinal},
		{ID: uuid.NewString(), Tipo: ParcelaSaldo},
	}}
}

// Buscar devolve a primeira parcela do tipo informado (e ordinal, para entradas).
func (p *Plano) Buscar(tipo TipoParcela, numero int) *InformacaoPagamento {
	for idx := range p.Informacoes {
		info := &p.Informacoes[idx]
		if info.Tipo != tipo {
			continue
		}
		if tipo == ParcelaEntrada && info.Numero != numero {
			continue
		}
		return info
	}
	return nil
}

func (p *Plano) PrimeiraEntrada() *InformacaoPagamento {
	return p.Buscar(ParcelaEntrada, 1)
}

func (p *Plano) RestanteEntrada() *InformacaoPagamento {
	return p.Buscar(ParcelaRestanteEntrada, 0)
}

func (p *Plano) Sinal() *InformacaoPagamento { return p.Buscar(ParcelaSinal, 0) }

func (p *Plano) Saldo() *InformacaoPagamento { return p.Buscar(ParcelaSaldo, 0) }

// BuscarPorID localiza uma parcela pelo seu identificador.
func (p *Plano) BuscarPorID(id string) *InformacaoPagamento {
	for idx := range p.Informacoes {
		if p.Informacoes[idx].ID == id {
			return &p.Informacoes[idx]
		}
	}
	return nil
}

// AdicionarEntrada acrescenta a próxima entrada numerada (3ª, 4ª, ...).
func (p *Plano) AdicionarEntrada() *InformacaoPagamento {
	maior := 0
	for _, info := range p.Informacoes {
		if info.Tipo == ParcelaEntrada && info.Numero > maior {
			maior = info.Numero
		}
	}
	p.Informacoes = append(p.Informacoes, InformacaoPagamento{
		ID:     uuid.NewString(),
		Tipo:   ParcelaEntrada,
		Numero: maior + 1,
	})
	return &p.Informacoes[len(p.Informacoes)-1]
}

// RemoverInformacao descarta uma entrada adicional. As cinco linhas originais
// são protegidas e o plano nunca fica com menos de cinco linhas.
func (p *Plano) RemoverInformacao(id string) error {
	if len(p.Informacoes) <= 5 {
		return ErrParcelaProtegida
	}
	for idx, info := range p.Informacoes {
		if info.ID != id {
			continue
		}
		if info.Tipo != ParcelaEntrada || info.Numero <= 2 {
			return ErrParcelaProtegida
		}
		p.Informacoes = append(p.Informacoes[:idx], p.Informacoes[idx+1:]...)
		return nil
	}
	return errors.New("parcela não encontrada")
}

// TotalEntradas soma o total de todas as entradas numeradas (1ª, 2ª, Nª).
func (p *Plano) TotalEntradas() float64 {
	var total float64
	for _, info := range p.Informacoes {
		if info.Tipo == ParcelaEntrada {
			total += info.Total
		}
	}
	return total
}

// ValorEntrada é o alvo de entrada por empreendimento: R$ 4.490 para os
// empreendimentos especiais, R$ 3.990 para os demais.
func ValorEntrada(nomeEmpreendimento string) float64 {
	nome := strings.TrimSpace(nomeEmpreendimento)
	for _, especial := range empreendimentosEspeciais {
		if nome == especial {
			return 4490
		}
	}
	return 3990
}

// dividirParcela calcula total/qtd arredondado a 2 casas decimais.
func dividirParcela(total float64, qtd int) float64 {
	if qtd <= 0 {
		return 0
	}
	valor, _ := decimal.NewFromFloat(total).
		DivRound(decimal.NewFromInt(int64(qtd)), 2).
		Float64()
	return valor
}

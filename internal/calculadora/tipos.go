// internal/calculadora/tipos.go
package calculadora

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TipoParcela identifica a parcela pela sua função no plano, nunca pelo rótulo
// digitado em tela. O rótulo de exibição é derivado via Rotulo().
type TipoParcela int

const (
	// ParcelaEntrada cobre as entradas numeradas (1ª, 2ª, Nª Entrada).
	ParcelaEntrada TipoParcela = iota + 1
	ParcelaRestanteEntrada
	ParcelaSinal
	ParcelaSaldo
)

// InformacaoPagamento é uma linha do plano de pagamento da ficha.
type InformacaoPagamento struct {
	ID                 string      `json:"id"`
	Tipo               TipoParcela `json:"tipo"`
	Numero             int         `json:"numero,omitempty"` // ordinal das entradas numeradas
	Total              float64     `json:"total"`
	QtdParcelas        int         `json:"qtdParcelas"`
	ValorParcela       float64     `json:"valorParcela"`
	FormaPagamento     string      `json:"formaPagamento"`
	PrimeiroVencimento time.Time   `json:"primeiroVencimento"` // zero = não informado
}

// Rotulo devolve o texto de exibição da parcela ("1ª Entrada", "Sinal"...).
func (i InformacaoPagamento) Rotulo() string {
	switch i.Tipo {
	case ParcelaEntrada:
		return fmt.Sprintf("%dª Entrada", i.Numero)
	case ParcelaRestanteEntrada:
		return "Restante da Entrada"
	case ParcelaSinal:
		return "Sinal"
	case ParcelaSaldo:
		return "Saldo"
	}
	return ""
}

// EhPrimeiraEntrada diz se a linha é a 1ª Entrada, que tem regras próprias
// (clone do valor distribuído e piso de R$ 1.000).
func (i InformacaoPagamento) EhPrimeiraEntrada() bool {
	return i.Tipo == ParcelaEntrada && i.Numero == 1
}

// TipoDeRotulo interpreta um rótulo vindo de fora ("2ª Entrada", "Sinal",
// "Entrada Restante"/"Restante da Entrada"). Rótulos desconhecidos retornam ok=false.
func TipoDeRotulo(rotulo string) (tipo TipoParcela, numero int, ok bool) {
	r := strings.TrimSpace(rotulo)
	switch r {
	case "Restante da Entrada", "Entrada Restante":
		return ParcelaRestanteEntrada, 0, true
	case "Sinal":
		return ParcelaSinal, 0, true
	case "Saldo":
		return ParcelaSaldo, 0, true
	}
	if idx := strings.Index(r, "ª Entrada"); idx > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(r[:idx]))
		if err == nil && n > 0 {
			return ParcelaEntrada, n, true
		}
	}
	return 0, 0, false
}

// ParcelaPagaSala é um pagamento recebido em sala durante a negociação.
type ParcelaPagaSala struct {
	ID               string   `json:"id"`
	Tipo             string   `json:"tipo"`
	ValorTotal       float64  `json:"valorTotal"`
	ValorDistribuido float64  `json:"valorDistribuido"`
	QuantidadeCotas  int      `json:"quantidadeCotas"`
	FormasPagamento  []string `json:"formasPagamento"`
}

// NovaParcelaSala cria a linha padrão, com uma forma de pagamento vazia.
func NovaParcelaSala() ParcelaPagaSala {
	return ParcelaPagaSala{
		ID:              uuid.NewString(),
		Tipo:            "Entrada",
		FormasPagamento: []string{""},
	}
}

// RemoverParcelaSala descarta a parcela com o id informado. A última linha
// nunca é removida: a ficha sempre tem ao menos um pagamento em sala.
func RemoverParcelaSala(parcelas []ParcelaPagaSala, id string) ([]ParcelaPagaSala, error) {
	if len(parcelas) <= 1 {
		return parcelas, errors.New("a ficha precisa de ao menos uma parcela paga em sala")
	}
	for idx, parcela := range parcelas {
		if parcela.ID == id {
			return append(parcelas[:idx], parcelas[idx+1:]...), nil
		}
	}
	return parcelas, errors.New("parcela não encontrada")
}

// Contrato é uma unidade vendida dentro da ficha.
type Contrato struct {
	ID                 string  `json:"id"`
	TipoContrato       string  `json:"tipoContrato"`
	EmpreendimentoID   uint    `json:"empreendimentoId"`
	NomeEmpreendimento string  `json:"nomeEmpreendimento"`
	Torre              string  `json:"torre"`
	Apartamento        string  `json:"apartamento"`
	Cota               string  `json:"cota"`
	CategoriaPreco     string  `json:"categoriaPreco"`
	Valor              float64 `json:"valor"`
}

// DadosCategoria é o contexto de preço resolvido para UM contrato
// (empreendimento × categoria). É passado explicitamente às operações que
// dependem dos limites da categoria, em vez de um contexto global implícito.
type DadosCategoria struct {
	ValorTotal       float64 `json:"valorTotal"`
	ValorSinal       float64 `json:"valorSinal"`
	ValorSaldo       float64 `json:"valorSaldo"`
	MaxParcelasSinal int     `json:"maxParcelasSinal"`
	MaxParcelasSaldo int     `json:"maxParcelasSaldo"`
}

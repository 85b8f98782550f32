// internal/alerta/alerta.go
package alerta

import (
	"fmt"
	"math"
	"time"

	"github.com/gavresorts/api-ficha/internal/calculadora"
)

// Níveis de alerta. Zero é erro de dado; os demais são degraus de autorização
// humana exigidos antes de fechar a negociação.
const (
	NivelErro      = 0
	NivelLiderSala = 1
	NivelRegional  = 2
	NivelDiretoria = 3
)

const (
	MsgErroPrimeiraEntrada = "ERRO: Primeira entrada não pode ser menor que R$ 1.000,00"
	MsgLiderSala           = "Precisa de autorização do líder de sala"
	MsgRegional            = "Precisa de autorização do regional"
	MsgDiretoria           = "Precisa de autorização da diretoria"
)

// Alerta é um aviso (chave, nível, mensagem) produzido pelas regras da ficha.
type Alerta struct {
	Chave    string `json:"chave"`
	Nivel    int    `json:"nivel"`
	Mensagem string `json:"mensagem"`
}

// Resultado separa os dois canais de aviso: Erros carrega TODOS os erros de
// dado (sempre exibidos, bloqueantes) e Autorizacao o maior degrau de
// autorização pendente (informativo, não bloqueante). Todos preserva a lista
// completa na ordem de avaliação, para o colapso legado.
type Resultado struct {
	Erros       []Alerta `json:"erros"`
	Autorizacao *Alerta  `json:"autorizacao,omitempty"`
	Todos       []Alerta `json:"-"`
}

// TemErros informa se algum erro de dado foi encontrado.
func (r Resultado) TemErros() bool { return len(r.Erros) > 0 }

// ColapsarLegado reproduz o comportamento herdado da ficha original: de todos
// os alertas disparados sobrevive apenas o de maior nível (o primeiro, em
// caso de empate). Um erro nível 0 pode ser escondido por uma autorização de
// diretoria — comportamento mantido porque a intenção original é ambígua.
func (r Resultado) ColapsarLegado() *Alerta {
	if len(r.Todos) == 0 {
		return nil
	}
	maximo := r.Todos[0]
	for _, a := range r.Todos[1:] {
		if a.Nivel > maximo.Nivel {
			maximo = a
		}
	}
	return &maximo
}

// ValidarPrimeiraEntrada avalia o valor da 1ª Entrada: abaixo de R$ 1.000 é
// erro; de R$ 1.000 a R$ 1.330 exige líder de sala; acima disso, nada.
func ValidarPrimeiraEntrada(valor float64) *Alerta {
	if valor < 1000 {
		return &Alerta{Chave: "primeira_entrada", Nivel: NivelErro, Mensagem: MsgErroPrimeiraEntrada}
	}
	if valor > 1330 {
		return nil
	}
	return &Alerta{Chave: "primeira_entrada", Nivel: NivelLiderSala, Mensagem: MsgLiderSala}
}

// ValidarRestanteEntrada avalia a quantidade de parcelas do Restante da
// Entrada: acima de 2 exige líder de sala.
func ValidarRestanteEntrada(qtdParcelas int) *Alerta {
	if qtdParcelas <= 2 {
		return nil
	}
	return &Alerta{Chave: "restante_entrada", Nivel: NivelLiderSala, Mensagem: MsgLiderSala}
}

// ValidarVencimentoSinal avalia a antecedência do primeiro vencimento do
// Sinal: até 150 dias passa; até 210 exige regional; além disso, diretoria.
func ValidarVencimentoSinal(hoje, vencimento time.Time) *Alerta {
	if vencimento.IsZero() {
		return nil
	}
	dias := int(math.Ceil(vencimento.Sub(hoje).Hours() / 24))
	if dias <= 150 {
		return nil
	}
	if dias <= 210 {
		return &Alerta{Chave: "data_sinal", Nivel: NivelRegional, Mensagem: MsgRegional}
	}
	return &Alerta{Chave: "data_sinal", Nivel: NivelDiretoria, Mensagem: MsgDiretoria}
}

// ValidarDiaVencimento confere a regra de vencimento de Sinal e Saldo: apenas
// dias 05 ou 15 do mês. Qualquer outro dia é erro de dado.
func ValidarDiaVencimento(info calculadora.InformacaoPagamento) *Alerta {
	if info.Tipo != calculadora.ParcelaSinal && info.Tipo != calculadora.ParcelaSaldo {
		return nil
	}
	if info.PrimeiroVencimento.IsZero() {
		return nil
	}
	dia := info.PrimeiroVencimento.Day()
	if dia == 5 || dia == 15 {
		return nil
	}
	return &Alerta{
		Chave:    "data_" + info.Rotulo(),
		Nivel:    NivelErro,
		Mensagem: fmt.Sprintf("ERRO: %s: Data deve ser dia 05 ou 15 do mês", info.Rotulo()),
	}
}

// Avaliar roda todas as regras sobre o plano e distribui os disparos nos dois
// canais. A ordem de avaliação é a mesma da ficha original.
func Avaliar(plano *calculadora.Plano, hoje time.Time) Resultado {
	var resultado Resultado

	if primeira := plano.PrimeiraEntrada(); primeira != nil && primeira.Total != 0 {
		if a := ValidarPrimeiraEntrada(primeira.Total); a != nil {
			resultado.Todos = append(resultado.Todos, *a)
		}
	}

	if restante := plano.RestanteEntrada(); restante != nil && restante.QtdParcelas > 0 {
		if a := ValidarRestanteEntrada(restante.QtdParcelas); a != nil {
			resultado.Todos = append(resultado.Todos, *a)
		}
	}

	if sinal := plano.Sinal(); sinal != nil {
		if a := ValidarVencimentoSinal(hoje, sinal.PrimeiroVencimento); a != nil {
			resultado.Todos = append(resultado.Todos, *a)
		}
	}

	for _, info := range plano.Informacoes {
		if a := ValidarDiaVencimento(info); a != nil {
			resultado.Todos = append(resultado.Todos, *a)
		}
	}

	for _, a := range resultado.Todos {
		if a.Nivel == NivelErro {
			resultado.Erros = append(resultado.Erros, a)
			continue
		}
		if resultado.Autorizacao == nil || a.Nivel > resultado.Autorizacao.Nivel {
			alerta := a
			resultado.Autorizacao = &alerta
		}
	}

	return resultado
}

// internal/ficha/plano.go
package ficha

import (
	"fmt"
	"time"

	"github.com/gavresorts/api-ficha/internal/calculadora"
	"github.com/google/uuid"
)

const formatoData = "2006-01-02"

// planoDeDTO converte as linhas do formulário em um plano tipado. Rótulo
// desconhecido é erro de entrada: a identidade da parcela nunca é texto livre.
func planoDeDTO(infos []InformacaoPagamentoDTO) (*calculadora.Plano, error) {
	plano := &calculadora.Plano{}
	for _, dto := range infos {
		tipo, numero, ok := calculadora.TipoDeRotulo(dto.Tipo)
		if !ok {
			return nil, fmt.Errorf("tipo de parcela desconhecido: %q", dto.Tipo)
		}

		info := calculadora.InformacaoPagamento{
			ID:             uuid.NewString(),
			Tipo:           tipo,
			Numero:         numero,
			Total:          dto.Total,
			QtdParcelas:    dto.QtdParcelas,
			ValorParcela:   dto.ValorParcela,
			FormaPagamento: dto.FormaPagamento,
		}
		if dto.PrimeiroVencimento != "" {
			venc, err := time.Parse(formatoData, dto.PrimeiroVencimento)
			if err != nil {
				return nil, fmt.Errorf("data de vencimento inválida em %q: %w", dto.Tipo, err)
			}
			info.PrimeiroVencimento = venc
		}
		plano.Informacoes = append(plano.Informacoes, info)
	}
	return plano, nil
}

// linhasDePlano converte o plano de volta em linhas persistíveis.
func linhasDePlano(plano *calculadora.Plano) []InformacaoPagamento {
	linhas := make([]InformacaoPagamento, 0, len(plano.Informacoes))
	for _, info := range plano.Informacoes {
		linha := InformacaoPagamento{
			Tipo:           info.Rotulo(),
			Total:          info.Total,
			QtdParcelas:    info.QtdParcelas,
			ValorParcela:   info.ValorParcela,
			FormaPagamento: info.FormaPagamento,
		}
		if !info.PrimeiroVencimento.IsZero() {
			venc := info.PrimeiroVencimento
			linha.PrimeiroVencimento = &venc
		}
		linhas = append(linhas, linha)
	}
	return linhas
}

// planoDeModelo remonta o plano tipado a partir das linhas persistidas.
// Linhas com rótulo irreconhecível são ignoradas.
func planoDeModelo(linhas []InformacaoPagamento) *calculadora.Plano {
	plano := &calculadora.Plano{}
	for _, linha := range linhas {
		tipo, numero, ok := calculadora.TipoDeRotulo(linha.Tipo)
		if !ok {
			continue
		}
		info := calculadora.InformacaoPagamento{
			ID:             fmt.Sprintf("%d", linha.ID),
			Tipo:           tipo,
			Numero:         numero,
			Total:          linha.Total,
			QtdParcelas:    linha.QtdParcelas,
			ValorParcela:   linha.ValorParcela,
			FormaPagamento: linha.FormaPagamento,
		}
		if linha.PrimeiroVencimento != nil {
			info.PrimeiroVencimento = *linha.PrimeiroVencimento
		}
		plano.Informacoes = append(plano.Informacoes, info)
	}
	return plano
}

// parcelaSalaDeDTO converte um pagamento em sala do formulário.
func parcelaSalaDeDTO(dto ParcelaSalaDTO) calculadora.ParcelaPagaSala {
	parcela := calculadora.ParcelaPagaSala{
		ID:               uuid.NewString(),
		Tipo:             dto.Tipo,
		ValorTotal:       dto.ValorTotal,
		ValorDistribuido: dto.ValorDistribuido,
		QuantidadeCotas:  dto.QuantidadeCotas,
		FormasPagamento:  dto.FormasPagamento,
	}
	if parcela.Tipo == "" {
		parcela.Tipo = "Entrada"
	}
	if len(parcela.FormasPagamento) == 0 {
		parcela.FormasPagamento = []string{""}
	}
	return parcela
}

// contratoAtivo devolve o primeiro contrato com empreendimento e categoria
// preenchidos. É o comportamento herdado da ficha original; com vários
// contratos de categorias diferentes o chamador deve resolver o contexto por
// contrato via empreendimento.Repository.
func contratoAtivo(contratos []ContratoDTO) *ContratoDTO {
	for idx := range contratos {
		c := &contratos[idx]
		if c.EmpreendimentoID != 0 && c.CategoriaPreco != "" {
			return c
		}
	}
	return nil
}

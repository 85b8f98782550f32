package ficha

import (
	"testing"
	"time"

	"github.com/gavresorts/api-ficha/internal/calculadora"
)

func TestPlanoDeDTO(t *testing.T) {
	dtos := []InformacaoPagamentoDTO{
		{Tipo: "1ª Entrada", Total: 2000, QtdParcelas: 1, ValorParcela: 2000, FormaPagamento: "PIX"},
		{Tipo: "Restante da Entrada", Total: 2490, QtdParcelas: 2, ValorParcela: 1245, PrimeiroVencimento: "2025-03-15"},
		{Tipo: "Sinal", Total: 15000, QtdParcelas: 12, ValorParcela: 1250},
		{Tipo: "Saldo", Total: 25510, QtdParcelas: 60, ValorParcela: 425.17},
	}

	plano, err := planoDeDTO(dtos)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(plano.Informacoes) != 4 {
		t.Fatalf("esperava 4 linhas, obteve %d", len(plano.Informacoes))
	}

	primeira := plano.PrimeiraEntrada()
	if primeira == nil || primeira.Total != 2000 || primeira.FormaPagamento != "PIX" {
		t.Fatalf("1ª Entrada mal mapeada: %+v", primeira)
	}

	restante := plano.RestanteEntrada()
	esperado := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if restante == nil || !restante.PrimeiroVencimento.Equal(esperado) {
		t.Fatalf("vencimento do restante mal mapeado: %+v", restante)
	}
}

func TestPlanoDeDTORejeitaRotuloDesconhecido(t *testing.T) {
	_, err := planoDeDTO([]InformacaoPagamentoDTO{{Tipo: "Mensalidade"}})
	if err == nil {
		t.Fatal("esperava erro para rótulo desconhecido")
	}
}

func TestPlanoDeDTORejeitaDataInvalida(t *testing.T) {
	_, err := planoDeDTO([]InformacaoPagamentoDTO{
		{Tipo: "Sinal", PrimeiroVencimento: "15/03/2025"},
	})
	if err == nil {
		t.Fatal("esperava erro para data fora do formato")
	}
}

func TestLinhasDePlanoIdaEVolta(t *testing.T) {
	plano := calculadora.NovoPlano()
	plano.PrimeiraEntrada().Total = 2000
	plano.Sinal().Total = 15000
	plano.Sinal().QtdParcelas = 12
	plano.Sinal().PrimeiroVencimento = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	linhas := linhasDePlano(plano)
	if len(linhas) != 5 {
		t.Fatalf("esperava 5 linhas, obteve %d", len(linhas))
	}
	if linhas[0].Tipo != "1ª Entrada" || linhas[3].Tipo != "Sinal" {
		t.Fatalf("rótulos fora de ordem: %q / %q", linhas[0].Tipo, linhas[3].Tipo)
	}
	if linhas[0].PrimeiroVencimento != nil {
		t.Fatal("linha sem vencimento deve persistir nil")
	}
	if linhas[3].PrimeiroVencimento == nil {
		t.Fatal("vencimento do sinal perdido na conversão")
	}

	remontado := planoDeModelo(linhas)
	if len(remontado.Informacoes) != 5 {
		t.Fatalf("esperava 5 linhas remontadas, obteve %d", len(remontado.Informacoes))
	}
	if sinal := remontado.Sinal(); sinal == nil || sinal.Total != 15000 || sinal.QtdParcelas != 12 {
		t.Fatalf("sinal mal remontado: %+v", remontado.Sinal())
	}
}

func TestPlanoDeModeloIgnoraRotuloIrreconhecivel(t *testing.T) {
	linhas := []InformacaoPagamento{
		{Tipo: "Sinal", Total: 15000},
		{Tipo: "Linha Corrompida", Total: 99},
	}
	plano := planoDeModelo(linhas)
	if len(plano.Informacoes) != 1 {
		t.Fatalf("esperava 1 linha válida, obteve %d", len(plano.Informacoes))
	}
}

func TestParcelaSalaDeDTOPadroes(t *testing.T) {
	p := parcelaSalaDeDTO(ParcelaSalaDTO{})
	if p.Tipo != "Entrada" {
		t.Fatalf("esperava tipo padrão Entrada, obteve %q", p.Tipo)
	}
	if len(p.FormasPagamento) != 1 || p.FormasPagamento[0] != "" {
		t.Fatalf("esperava uma forma vazia, obteve %v", p.FormasPagamento)
	}
	if p.ID == "" {
		t.Fatal("esperava ID gerado")
	}
}

func TestContratoAtivo(t *testing.T) {
	contratos := []ContratoDTO{
		{TipoContrato: "Padrão"},
		{EmpreendimentoID: 2, CategoriaPreco: ""},
		{EmpreendimentoID: 3, CategoriaPreco: "Bronze", Valor: 45000},
		{EmpreendimentoID: 4, CategoriaPreco: "Ouro"},
	}

	ativo := contratoAtivo(contratos)
	if ativo == nil || ativo.EmpreendimentoID != 3 {
		t.Fatalf("esperava o primeiro contrato completo, obteve %+v", ativo)
	}

	if ativo := contratoAtivo(nil); ativo != nil {
		t.Fatalf("sem contratos esperava nil, obteve %+v", ativo)
	}
}

func TestNormalizarPreencheECalcula(t *testing.T) {
	plano := calculadora.NovoPlano()
	plano.PrimeiraEntrada().Total = 2000
	ctx := &contextoNegociacao{
		NomeEmpreendimento: "Gran Garden",
		ValorContrato:      45000,
		Dados: &calculadora.DadosCategoria{
			ValorSinal:       15000,
			ValorSaldo:       25510,
			MaxParcelasSinal: 12,
			MaxParcelasSaldo: 60,
		},
	}

	resultado := normalizar(plano, ctx, time.Now())

	if got := plano.Sinal().Total; got != 15000 {
		t.Fatalf("sinal não preenchido pela categoria: %.2f", got)
	}
	if got := plano.RestanteEntrada().Total; got != 2490 {
		t.Fatalf("restante esperado 2490 para o Gran Garden, obteve %.2f", got)
	}
	if resultado.TemErros() {
		t.Fatalf("não esperava erros: %+v", resultado.Erros)
	}
}

func TestAplicarValorDaCategoria(t *testing.T) {
	ctx := &contextoNegociacao{
		Dados: &calculadora.DadosCategoria{ValorTotal: 45000},
	}
	aplicarValorDaCategoria(ctx)
	if ctx.ValorContrato != 45000 {
		t.Fatalf("esperava valor da cota 45000, obteve %.2f", ctx.ValorContrato)
	}

	// Valor informado pelo vendedor prevalece sobre a tabela.
	ctx = &contextoNegociacao{
		ValorContrato: 46500,
		Dados:         &calculadora.DadosCategoria{ValorTotal: 45000},
	}
	aplicarValorDaCategoria(ctx)
	if ctx.ValorContrato != 46500 {
		t.Fatalf("valor informado foi sobrescrito: %.2f", ctx.ValorContrato)
	}

	// Sem categoria resolvida nada muda.
	ctx = &contextoNegociacao{}
	aplicarValorDaCategoria(ctx)
	if ctx.ValorContrato != 0 {
		t.Fatalf("esperava valor zero sem categoria, obteve %.2f", ctx.ValorContrato)
	}
}

func TestNormalizarNaoSobrescreveSinalPreenchido(t *testing.T) {
	plano := calculadora.NovoPlano()
	plano.Sinal().Total = 9999
	plano.Saldo().Total = 1
	ctx := &contextoNegociacao{
		Dados: &calculadora.DadosCategoria{ValorSinal: 15000, ValorSaldo: 25510, MaxParcelasSinal: 12, MaxParcelasSaldo: 60},
	}

	normalizar(plano, ctx, time.Now())

	if got := plano.Sinal().Total; got != 9999 {
		t.Fatalf("sinal preenchido foi sobrescrito: %.2f", got)
	}
}

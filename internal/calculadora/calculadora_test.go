package calculadora

import (
	"math"
	"testing"
)

func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestNovoPlanoTemCincoLinhasFixas(t *testing.T) {
	p := NovoPlano()
	if len(p.Informacoes) != 5 {
		t.Fatalf("esperava 5 linhas, obteve %d", len(p.Informacoes))
	}

	rotulos := []string{"1ª Entrada", "Restante da Entrada", "2ª Entrada", "Sinal", "Saldo"}
	for i, esperado := range rotulos {
		if got := p.Informacoes[i].Rotulo(); got != esperado {
			t.Errorf("linha %d: esperava %q, obteve %q", i, esperado, got)
		}
	}
}

func TestAdicionarEntradaSegueOrdinal(t *testing.T) {
	p := NovoPlano()
	nova := p.AdicionarEntrada()
	if nova.Rotulo() != "3ª Entrada" {
		t.Fatalf("esperava 3ª Entrada, obteve %q", nova.Rotulo())
	}
	outra := p.AdicionarEntrada()
	if outra.Rotulo() != "4ª Entrada" {
		t.Fatalf("esperava 4ª Entrada, obteve %q", outra.Rotulo())
	}
}

func TestRemoverInformacaoProtegeLinhasFixas(t *testing.T) {
	p := NovoPlano()
	if err := p.RemoverInformacao(p.PrimeiraEntrada().ID); err == nil {
		t.Fatal("esperava erro ao remover a 1ª Entrada de um plano com 5 linhas")
	}

	extra := p.AdicionarEntrada()
	extraID := extra.ID

	// Com 6 linhas as fixas continuam protegidas.
	if err := p.RemoverInformacao(p.Sinal().ID); err == nil {
		t.Fatal("esperava erro ao remover o Sinal")
	}
	if err := p.RemoverInformacao(p.Buscar(ParcelaEntrada, 2).ID); err == nil {
		t.Fatal("esperava erro ao remover a 2ª Entrada")
	}

	if err := p.RemoverInformacao(extraID); err != nil {
		t.Fatalf("esperava remover a 3ª Entrada, obteve erro: %v", err)
	}
	if len(p.Informacoes) != 5 {
		t.Fatalf("esperava 5 linhas após remoção, obteve %d", len(p.Informacoes))
	}
}

func TestRecalcularRestanteEntrada(t *testing.T) {
	p := NovoPlano()
	p.PrimeiraEntrada().Total = 2000

	p.RecalcularRestanteEntrada(4490)

	restante := p.RestanteEntrada()
	if !quaseIgual(restante.Total, 2490) {
		t.Fatalf("esperava restante 2490, obteve %.2f", restante.Total)
	}
	if !quaseIgual(restante.ValorParcela, 2490) {
		t.Fatalf("esperava parcela 2490 com qtd 1, obteve %.2f", restante.ValorParcela)
	}
}

func TestRecalcularRestanteEntradaZeraQuandoCoberto(t *testing.T) {
	p := NovoPlano()
	p.PrimeiraEntrada().Total = 4490
	restante := p.RestanteEntrada()
	restante.Total = 1000
	restante.QtdParcelas = 3

	p.RecalcularRestanteEntrada(4490)

	if restante.Total != 0 || restante.ValorParcela != 0 {
		t.Fatalf("esperava restante zerado, obteve total=%.2f parcela=%.2f", restante.Total, restante.ValorParcela)
	}
	if restante.QtdParcelas != 1 {
		t.Fatalf("esperava qtd 1 após zerar, obteve %d", restante.QtdParcelas)
	}
}

func TestRecalcularRestanteEntradaSomaTodasAsEntradas(t *testing.T) {
	p := NovoPlano()
	p.PrimeiraEntrada().Total = 1500
	p.Buscar(ParcelaEntrada, 2).Total = 1000
	p.AdicionarEntrada().Total = 500

	p.RecalcularRestanteEntrada(3990)

	if restante := p.RestanteEntrada(); !quaseIgual(restante.Total, 990) {
		t.Fatalf("esperava restante 990, obteve %.2f", restante.Total)
	}
}

func TestAplicarValorDistribuido(t *testing.T) {
	p := NovoPlano()
	parcela := ParcelaPagaSala{
		ValorDistribuido: 2000,
		FormasPagamento:  []string{"PIX", "Cartão"},
	}

	p.AplicarValorDistribuido(parcela, 4490)

	primeira := p.PrimeiraEntrada()
	if primeira.Total != 2000 || primeira.ValorParcela != 2000 || primeira.QtdParcelas != 1 {
		t.Fatalf("esperava clone 2000/2000/1, obteve %.2f/%.2f/%d",
			primeira.Total, primeira.ValorParcela, primeira.QtdParcelas)
	}
	if primeira.FormaPagamento != "PIX" {
		t.Fatalf("esperava forma PIX semeada, obteve %q", primeira.FormaPagamento)
	}
	if restante := p.RestanteEntrada(); !quaseIgual(restante.Total, 2490) {
		t.Fatalf("esperava restante 2490, obteve %.2f", restante.Total)
	}
}

func TestAplicarValorDistribuidoPreservaFormaExistente(t *testing.T) {
	p := NovoPlano()
	p.PrimeiraEntrada().FormaPagamento = "Dinheiro"

	p.AplicarValorDistribuido(ParcelaPagaSala{ValorDistribuido: 1500, FormasPagamento: []string{"PIX"}}, 4490)

	if got := p.PrimeiraEntrada().FormaPagamento; got != "Dinheiro" {
		t.Fatalf("esperava forma preservada Dinheiro, obteve %q", got)
	}
}

func TestPreencherPorCategoria(t *testing.T) {
	p := NovoPlano()
	p.PrimeiraEntrada().Total = 2000

	p.PreencherPorCategoria(DadosCategoria{
		ValorSinal:       15000,
		ValorSaldo:       25510,
		MaxParcelasSinal: 12,
		MaxParcelasSaldo: 60,
	})

	sinal := p.Sinal()
	if sinal.Total != 15000 || sinal.QtdParcelas != 12 {
		t.Fatalf("sinal: esperava 15000/12, obteve %.2f/%d", sinal.Total, sinal.QtdParcelas)
	}
	if !quaseIgual(sinal.ValorParcela, 1250.00) {
		t.Fatalf("sinal: esperava parcela 1250.00, obteve %.2f", sinal.ValorParcela)
	}

	saldo := p.Saldo()
	if !quaseIgual(saldo.ValorParcela, 425.17) {
		t.Fatalf("saldo: esperava parcela 425.17, obteve %.2f", saldo.ValorParcela)
	}

	// A 1ª Entrada não é tocada pela categoria.
	if p.PrimeiraEntrada().Total != 2000 {
		t.Fatalf("1ª Entrada alterada pela categoria: %.2f", p.PrimeiraEntrada().Total)
	}
}

func TestDefinirTotalRejeitaPrimeiraEntradaAbaixoDoPiso(t *testing.T) {
	p := NovoPlano()
	primeira := p.PrimeiraEntrada()
	primeira.Total = 1500
	primeira.QtdParcelas = 1
	primeira.ValorParcela = 1500

	if p.DefinirTotal(primeira.ID, 999) {
		t.Fatal("esperava rejeição de total 999 na 1ª Entrada")
	}
	if primeira.Total != 1500 {
		t.Fatalf("estado anterior perdido: %.2f", primeira.Total)
	}

	if !p.DefinirTotal(primeira.ID, 1000) {
		t.Fatal("esperava aceitar total 1000 na 1ª Entrada")
	}
	// Zerar é permitido.
	if !p.DefinirTotal(primeira.ID, 0) {
		t.Fatal("esperava aceitar total 0 na 1ª Entrada")
	}
}

func TestDefinirTotalRejeitaNegativo(t *testing.T) {
	p := NovoPlano()
	primeira := p.PrimeiraEntrada()
	primeira.Total = 1500

	if p.DefinirTotal(primeira.ID, -500) {
		t.Fatal("esperava rejeição de total negativo na 1ª Entrada")
	}
	if primeira.Total != 1500 {
		t.Fatalf("estado anterior perdido: %.2f", primeira.Total)
	}

	if p.DefinirTotal(p.Sinal().ID, -1) {
		t.Fatal("esperava rejeição de total negativo no Sinal")
	}
}

func TestDefinirQtdParcelasRespeitaTeto(t *testing.T) {
	p := NovoPlano()
	dados := &DadosCategoria{MaxParcelasSinal: 12, MaxParcelasSaldo: 60}

	sinal := p.Sinal()
	sinal.Total = 15000

	if p.DefinirQtdParcelas(sinal.ID, 13, dados) {
		t.Fatal("esperava rejeição acima do teto do sinal")
	}
	if sinal.QtdParcelas != 0 {
		t.Fatalf("estado anterior perdido: %d", sinal.QtdParcelas)
	}

	if !p.DefinirQtdParcelas(sinal.ID, 12, dados) {
		t.Fatal("esperava aceitar qtd igual ao teto")
	}
	if !quaseIgual(sinal.ValorParcela, 1250.00) {
		t.Fatalf("esperava parcela 1250.00, obteve %.2f", sinal.ValorParcela)
	}

	restante := p.RestanteEntrada()
	restante.Total = 2490
	if p.DefinirQtdParcelas(restante.ID, 6, nil) {
		t.Fatal("esperava rejeição acima do teto fixo do restante")
	}
	if !p.DefinirQtdParcelas(restante.ID, 5, nil) {
		t.Fatal("esperava aceitar 5 parcelas no restante")
	}
	if !quaseIgual(restante.ValorParcela, 498.00) {
		t.Fatalf("esperava parcela 498.00, obteve %.2f", restante.ValorParcela)
	}
}

func TestValorEntradaPorEmpreendimento(t *testing.T) {
	casos := []struct {
		nome     string
		esperado float64
	}{
		{"Gran Garden", 4490},
		{"Gran Valley", 4490},
		{"Paradise Resort", 3990},
		{"", 3990},
	}
	for _, caso := range casos {
		if got := ValorEntrada(caso.nome); got != caso.esperado {
			t.Errorf("ValorEntrada(%q) = %.0f, esperava %.0f", caso.nome, got, caso.esperado)
		}
	}
}

func TestTipoDeRotulo(t *testing.T) {
	casos := []struct {
		rotulo string
		tipo   TipoParcela
		numero int
		ok     bool
	}{
		{"1ª Entrada", ParcelaEntrada, 1, true},
		{"12ª Entrada", ParcelaEntrada, 12, true},
		{"Restante da Entrada", ParcelaRestanteEntrada, 0, true},
		{"Entrada Restante", ParcelaRestanteEntrada, 0, true},
		{"Sinal", ParcelaSinal, 0, true},
		{"Saldo", ParcelaSaldo, 0, true},
		{"Mensalidade", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, caso := range casos {
		tipo, numero, ok := TipoDeRotulo(caso.rotulo)
		if tipo != caso.tipo || numero != caso.numero || ok != caso.ok {
			t.Errorf("TipoDeRotulo(%q) = (%d, %d, %v), esperava (%d, %d, %v)",
				caso.rotulo, tipo, numero, ok, caso.tipo, caso.numero, caso.ok)
		}
	}
}

func TestRemoverParcelaSala(t *testing.T) {
	unica := []ParcelaPagaSala{NovaParcelaSala()}
	if _, err := RemoverParcelaSala(unica, unica[0].ID); err == nil {
		t.Fatal("esperava erro ao remover a última parcela de sala")
	}

	duas := []ParcelaPagaSala{NovaParcelaSala(), NovaParcelaSala()}
	alvo := duas[1].ID
	restantes, err := RemoverParcelaSala(duas, alvo)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(restantes) != 1 {
		t.Fatalf("esperava 1 parcela restante, obteve %d", len(restantes))
	}
	if restantes[0].ID == alvo {
		t.Fatal("a parcela errada foi removida")
	}

	outras := []ParcelaPagaSala{NovaParcelaSala(), NovaParcelaSala()}
	if _, err := RemoverParcelaSala(outras, "inexistente"); err == nil {
		t.Fatal("esperava erro para id inexistente")
	}
}

func TestAuditoriaValores(t *testing.T) {
	p := NovoPlano()
	p.PrimeiraEntrada().Total = 2000
	p.RestanteEntrada().Total = 2490
	p.Sinal().Total = 15000
	p.Saldo().Total = 25510

	auditoria := p.AuditoriaValores(45000)
	if !auditoria.Valida {
		t.Fatalf("esperava auditoria válida, obteve: %s", auditoria.Detalhes)
	}

	auditoria = p.AuditoriaValores(45100)
	if auditoria.Valida {
		t.Fatalf("esperava auditoria inválida com diferença de 100, obteve: %s", auditoria.Detalhes)
	}
}

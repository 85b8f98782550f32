package documento

import (
	"bytes"
	"testing"
)

func clienteDeTeste() DadosCliente {
	return DadosCliente{
		Nome:           "João da Silva",
		CPF:            "123.456.789-00",
		RG:             "12.345.678-9",
		Profissao:      "Engenheiro",
		DataNascimento: "01/01/1980",
		EstadoCivil:    "Casado",
		Email:          "joao@example.com",
		Telefone:       "(62) 99999-0000",
		Logradouro:     "Rua das Flores",
		NumeroEndereco: "100",
		Cidade:         "Goiânia",
		UFEndereco:     "GO",
	}
}

func conferePDF(t *testing.T, pdf []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("PDF vazio")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("saída não começa com %%PDF: %q", pdf[:8])
	}
}

func TestGerarPDFCadastroCliente(t *testing.T) {
	pdf, err := GerarPDFCadastroCliente(clienteDeTeste())
	conferePDF(t, pdf, err)
}

func TestGerarPDFCadastroClienteComConjuge(t *testing.T) {
	c := clienteDeTeste()
	c.NomeConjuge = "Maria da Silva"
	c.CPFConjuge = "987.654.321-00"

	pdf, err := GerarPDFCadastroCliente(c)
	conferePDF(t, pdf, err)

	// A seção de cônjuge só aumenta o documento.
	semConjuge, err := GerarPDFCadastroCliente(clienteDeTeste())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(pdf) <= len(semConjuge) {
		t.Fatalf("PDF com cônjuge deveria ser maior: %d <= %d", len(pdf), len(semConjuge))
	}
}

func TestGerarPDFNegociacao(t *testing.T) {
	negociacao := DadosNegociacao{
		Liner:     "Carlos",
		Closer:    "Ana",
		TipoVenda: "Padrão",
		ParcelasSala: []ParcelaSala{
			{Tipo: "Entrada", ValorTotal: "R$ 2000.00", ValorDistribuido: "R$ 2000.00", QuantidadeCotas: "1", FormasPagamento: []string{"PIX"}},
		},
		Contratos: []Contrato{
			{NomeEmpreendimento: "Gran Garden", Torre: "A", Apartamento: "101", Cota: "7", CategoriaPreco: "Bronze", Valor: "R$ 45000.00"},
		},
		Informacoes: []InformacaoPagamento{
			{Tipo: "1ª Entrada", Total: "R$ 2000.00", QtdParcelas: "1", ValorParcela: "R$ 2000.00", FormaPagamento: "PIX", PrimeiroVencimento: "15/03/2025"},
			{Tipo: "Sinal", Total: "R$ 15000.00", QtdParcelas: "12", ValorParcela: "R$ 1250.00", PrimeiroVencimento: "15/06/2025"},
		},
	}

	pdf, err := GerarPDFNegociacao(clienteDeTeste(), negociacao)
	conferePDF(t, pdf, err)
}

func TestEmBase64(t *testing.T) {
	if got := EmBase64([]byte("PDF")); got != "UERG" {
		t.Fatalf("EmBase64 = %q, esperava UERG", got)
	}
}

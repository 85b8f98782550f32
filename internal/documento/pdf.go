// internal/documento/pdf.go
package documento

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	margem      = 15.0
	larguraUtil = 180.0
	alturaLinha = 7.0
	fontePadrao = "Arial"
)

type gerador struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func novoGerador() *gerador {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margem, margem, margem)
	pdf.SetAutoPageBreak(true, margem)
	return &gerador{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (g *gerador) cabecalho(titulo, pagina string) {
	g.pdf.AddPage()
	g.pdf.SetFont(fontePadrao, "B", 16)
	g.pdf.CellFormat(larguraUtil, 10, g.tr("GAV Resorts"), "", 1, "C", false, 0, "")
	g.pdf.SetFont(fontePadrao, "B", 13)
	g.pdf.CellFormat(larguraUtil, 8, g.tr(titulo), "", 1, "C", false, 0, "")
	g.pdf.SetFont(fontePadrao, "", 9)
	g.pdf.CellFormat(larguraUtil, 5, g.tr(pagina), "", 1, "C", false, 0, "")
	g.pdf.Ln(4)
}

func (g *gerador) secao(titulo string) {
	g.pdf.SetFont(fontePadrao, "B", 11)
	g.pdf.SetFillColor(230, 230, 230)
	g.pdf.CellFormat(larguraUtil, alturaLinha, g.tr(titulo), "1", 1, "L", true, 0, "")
	g.pdf.SetFont(fontePadrao, "", 9)
}

// campo escreve um par rótulo/valor ocupando a proporção dada da largura útil.
func (g *gerador) campo(rotulo, valor string, proporcao float64, quebra bool) {
	largura := larguraUtil * proporcao
	g.pdf.SetFont(fontePadrao, "B", 8)
	g.pdf.CellFormat(largura*0.4, alturaLinha, g.tr(rotulo), "1", 0, "L", false, 0, "")
	g.pdf.SetFont(fontePadrao, "", 9)
	fim := 0
	if quebra {
		fim = 1
	}
	g.pdf.CellFormat(largura*0.6, alturaLinha, g.tr(valor), "1", fim, "L", false, 0, "")
}

func (g *gerador) tabela(colunas []string, larguras []float64, linhas [][]string) {
	g.pdf.SetFont(fontePadrao, "B", 8)
	g.pdf.SetFillColor(240, 240, 240)
	for i, col := range colunas {
		g.pdf.CellFormat(larguras[i], alturaLinha, g.tr(col), "1", 0, "C", true, 0, "")
	}
	g.pdf.Ln(-1)

	g.pdf.SetFont(fontePadrao, "", 8)
	for _, linha := range linhas {
		for i, cel := range linha {
			g.pdf.CellFormat(larguras[i], alturaLinha, g.tr(cel), "1", 0, "L", false, 0, "")
		}
		g.pdf.Ln(-1)
	}
	g.pdf.Ln(3)
}

func (g *gerador) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GerarPDFCadastroCliente produz a ficha de cadastro do cliente (página 1).
func GerarPDFCadastroCliente(c DadosCliente) ([]byte, error) {
	g := novoGerador()
	g.cabecalho("Ficha de Cadastro de Cliente", "Página 1")

	g.secao("Dados Pessoais")
	g.campo("Nome", c.Nome, 1, true)
	g.campo("CPF", c.CPF, 0.5, false)
	g.campo("RG", c.RG, 0.5, true)
	g.campo("Órgão Emissor", c.OrgaoEmissor, 0.5, false)
	g.campo("UF Emissor", c.EstadoEmissor, 0.5, true)
	g.campo("Profissão", c.Profissao, 0.5, false)
	g.campo("Nascimento", c.DataNascimento, 0.5, true)
	g.campo("Estado Civil", c.EstadoCivil, 0.5, false)
	g.campo("Telefone", c.Telefone, 0.5, true)
	g.campo("E-mail", c.Email, 1, true)
	g.pdf.Ln(3)

	g.secao("Endereço")
	g.campo("Logradouro", c.Logradouro, 0.7, false)
	g.campo("Número", c.NumeroEndereco, 0.3, true)
	g.campo("Bairro", c.Bairro, 0.5, false)
	g.campo("Complemento", c.Complemento, 0.5, true)
	g.campo("CEP", c.CEP, 0.4, false)
	g.campo("Cidade", c.Cidade, 0.4, false)
	g.campo("UF", c.UFEndereco, 0.2, true)
	g.pdf.Ln(3)

	if c.NomeConjuge != "" {
		g.secao("Dados do Cônjuge")
		g.campo("Nome", c.NomeConjuge, 1, true)
		g.campo("CPF", c.CPFConjuge, 0.5, false)
		g.campo("RG", c.RGConjuge, 0.5, true)
		g.campo("Órgão Emissor", c.OrgaoEmissorConjuge, 0.5, false)
		g.campo("UF Emissor", c.EstadoEmissorConjuge, 0.5, true)
		g.campo("Profissão", c.ProfissaoConjuge, 0.5, false)
		g.campo("Telefone", c.TelefoneConjuge, 0.5, true)
		g.campo("E-mail", c.EmailConjuge, 1, true)
	}

	return g.bytes()
}

// GerarPDFNegociacao produz a ficha de negociação de cota (páginas 2 e 3).
func GerarPDFNegociacao(c DadosCliente, n DadosNegociacao) ([]byte, error) {
	g := novoGerador()
	g.cabecalho("Ficha de Negociação de Cota", "Página 2")

	g.secao("Identificação")
	g.campo("Cliente", c.Nome, 0.6, false)
	g.campo("CPF", c.CPF, 0.4, true)
	g.campo("Liner", n.Liner, 0.5, false)
	g.campo("Closer", n.Closer, 0.5, true)
	g.campo("Tipo de Venda", n.TipoVenda, 0.5, true)
	g.pdf.Ln(3)

	g.secao("Parcelas Pagas em Sala")
	linhasSala := make([][]string, 0, len(n.ParcelasSala))
	for _, p := range n.ParcelasSala {
		linhasSala = append(linhasSala, []string{
			p.Tipo, p.ValorTotal, p.ValorDistribuido, p.QuantidadeCotas,
			strings.Join(p.FormasPagamento, ", "),
		})
	}
	g.tabela(
		[]string{"Tipo", "Valor Total", "Valor Distribuído", "Qtd. Cotas", "Formas de Pag."},
		[]float64{35, 30, 35, 25, 55},
		linhasSala,
	)

	g.secao("Contratos")
	linhasContratos := make([][]string, 0, len(n.Contratos))
	for _, ct := range n.Contratos {
		linhasContratos = append(linhasContratos, []string{
			ct.NomeEmpreendimento, ct.Torre, ct.Apartamento, ct.Cota,
			ct.CategoriaPreco, ct.Valor,
		})
	}
	g.tabela(
		[]string{"Empreendimento", "Torre", "Apto", "Cota", "Categoria", "Valor"},
		[]float64{45, 25, 20, 20, 30, 40},
		linhasContratos,
	)

	g.pdf.AddPage()
	g.pdf.SetFont(fontePadrao, "B", 13)
	g.pdf.CellFormat(larguraUtil, 8, g.tr("Informações de Pagamento"), "", 1, "C", false, 0, "")
	g.pdf.SetFont(fontePadrao, "", 9)
	g.pdf.CellFormat(larguraUtil, 5, g.tr("Página 3"), "", 1, "C", false, 0, "")
	g.pdf.Ln(4)

	linhasPagamento := make([][]string, 0, len(n.Informacoes))
	for _, info := range n.Informacoes {
		linhasPagamento = append(linhasPagamento, []string{
			info.Tipo, info.Total, info.QtdParcelas, info.ValorParcela,
			info.FormaPagamento, info.PrimeiroVencimento,
		})
	}
	g.tabela(
		[]string{"Tipo", "Total", "Qtd. Parcelas", "Valor Parcela", "Forma de Pag.", "1º Vencimento"},
		[]float64{35, 28, 25, 28, 34, 30},
		linhasPagamento,
	)

	g.pdf.SetFont(fontePadrao, "", 8)
	g.pdf.CellFormat(larguraUtil, 5, g.tr("O financeiro descrito acima é referente a cada unidade separadamente."), "", 1, "C", false, 0, "")
	g.pdf.Ln(12)
	g.pdf.CellFormat(larguraUtil, 5, "_________________________________________", "", 1, "C", false, 0, "")
	g.pdf.CellFormat(larguraUtil, 5, g.tr("Assinatura do Cliente"), "", 1, "C", false, 0, "")

	return g.bytes()
}

// EmBase64 codifica um PDF para transporte no corpo do email.
func EmBase64(pdf []byte) string {
	return base64.StdEncoding.EncodeToString(pdf)
}

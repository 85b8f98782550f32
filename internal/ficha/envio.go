// internal/ficha/envio.go
package ficha

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gavresorts/api-ficha/internal/alerta"
	"github.com/gavresorts/api-ficha/internal/cliente"
	"github.com/gavresorts/api-ficha/internal/documento"
	"github.com/gavresorts/api-ficha/internal/email"
	"github.com/gavresorts/api-ficha/internal/notificacao"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ErrClienteNaoEncontrado indica que a ficha aponta para um cliente inexistente.
var ErrClienteNaoEncontrado = errors.New("cliente da ficha não encontrado")

// RespostaEnvio é o desfecho da geração e entrega dos documentos. Os PDFs vão
// sempre em base64, entregues ou não, para permitir o envio manual.
type RespostaEnvio struct {
	Entregue      bool   `json:"entregue"`
	Mensagem      string `json:"mensagem"`
	EnvioID       string `json:"envioId,omitempty"`
	PDFCadastro   string `json:"pdfCadastro"`
	PDFNegociacao string `json:"pdfNegociacao"`
}

// Enviador gera os PDFs da ficha e entrega por email. Envios concorrentes da
// mesma sessão são colapsados em uma única execução.
type Enviador struct {
	Clientes cliente.Repository
	Email    *email.Servico
	grupo    singleflight.Group
}

func NewEnviador(clientes cliente.Repository, servico *email.Servico) *Enviador {
	return &Enviador{Clientes: clientes, Email: servico}
}

// Enviar executa o pipeline completo: carrega o cliente, monta os dois PDFs,
// tenta a entrega e dispara o webhook quando há autorização de diretoria
// pendente. A chave de deduplicação é o SessaoID da ficha.
func (e *Enviador) Enviar(ctx context.Context, f *Ficha) (*RespostaEnvio, error) {
	resposta, err, _ := e.grupo.Do(f.SessaoID, func() (interface{}, error) {
		return e.enviar(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	return resposta.(*RespostaEnvio), nil
}

func (e *Enviador) enviar(ctx context.Context, f *Ficha) (*RespostaEnvio, error) {
	c, err := e.Clientes.BuscarPorID(f.ClienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNaoEncontrado
		}
		return nil, err
	}

	dadosCliente := dadosClienteParaPDF(c)
	negociacao := negociacaoParaPDF(f)

	pdfCadastro, err := documento.GerarPDFCadastroCliente(dadosCliente)
	if err != nil {
		return nil, fmt.Errorf("gerar PDF de cadastro: %w", err)
	}
	pdfNegociacao, err := documento.GerarPDFNegociacao(dadosCliente, negociacao)
	if err != nil {
		return nil, fmt.Errorf("gerar PDF de negociação: %w", err)
	}

	resultado := e.Email.EnviarPDFs(ctx, email.Envio{
		SessaoID:      f.SessaoID,
		NomeCliente:   c.Nome,
		Assunto:       fmt.Sprintf("Ficha de Negociação - %s", c.Nome),
		PDFCadastro:   pdfCadastro,
		PDFNegociacao: pdfNegociacao,
	})

	avaliacao := alerta.Avaliar(planoDeModelo(f.Informacoes), time.Now())
	if avaliacao.Autorizacao != nil && avaliacao.Autorizacao.Nivel == alerta.NivelDiretoria {
		notificacao.EnviarWebhookAlerta(f.SessaoID, avaliacao.Autorizacao.Mensagem, avaliacao.Autorizacao.Nivel)
	}

	return &RespostaEnvio{
		Entregue:      resultado.Entregue,
		Mensagem:      resultado.Mensagem,
		EnvioID:       resultado.EnvioID,
		PDFCadastro:   documento.EmBase64(pdfCadastro),
		PDFNegociacao: documento.EmBase64(pdfNegociacao),
	}, nil
}

const formatoDataExibicao = "02/01/2006"

func moeda(valor float64) string {
	return fmt.Sprintf("R$ %.2f", valor)
}

func dadosClienteParaPDF(c *cliente.Cliente) documento.DadosCliente {
	return documento.DadosCliente{
		Nome:           c.Nome,
		CPF:            c.CPF,
		RG:             c.RG,
		OrgaoEmissor:   c.OrgaoEmissor,
		EstadoEmissor:  c.EstadoEmissor,
		Profissao:      c.Profissao,
		DataNascimento: c.DataNascimento,
		EstadoCivil:    c.EstadoCivil,
		Email:          c.Email,
		Telefone:       c.Telefone,

		Logradouro:     c.Logradouro,
		NumeroEndereco: c.NumeroEndereco,
		Bairro:         c.Bairro,
		Complemento:    c.Complemento,
		CEP:            c.CEP,
		Cidade:         c.Cidade,
		UFEndereco:     c.UFEndereco,

		NomeConjuge:          c.NomeConjuge,
		CPFConjuge:           c.CPFConjuge,
		RGConjuge:            c.RGConjuge,
		OrgaoEmissorConjuge:  c.OrgaoEmissorConjuge,
		EstadoEmissorConjuge: c.EstadoEmissorConjuge,
		ProfissaoConjuge:     c.ProfissaoConjuge,
		EmailConjuge:         c.EmailConjuge,
		TelefoneConjuge:      c.TelefoneConjuge,
	}
}

func negociacaoParaPDF(f *Ficha) documento.DadosNegociacao {
	n := documento.DadosNegociacao{
		Liner:     f.Liner,
		Closer:    f.Closer,
		TipoVenda: f.TipoVenda,
	}

	for _, p := range f.ParcelasSala {
		n.ParcelasSala = append(n.ParcelasSala, documento.ParcelaSala{
			Tipo:             p.Tipo,
			ValorTotal:       moeda(p.ValorTotal),
			ValorDistribuido: moeda(p.ValorDistribuido),
			QuantidadeCotas:  fmt.Sprintf("%d", p.QuantidadeCotas),
			FormasPagamento:  p.FormasPagamento,
		})
	}

	for _, c := range f.Contratos {
		n.Contratos = append(n.Contratos, documento.Contrato{
			TipoContrato:       c.TipoContrato,
			NomeEmpreendimento: c.NomeEmpreendimento,
			Torre:              c.Torre,
			Apartamento:        c.Apartamento,
			Cota:               c.Cota,
			CategoriaPreco:     c.CategoriaPreco,
			Valor:              moeda(c.Valor),
		})
	}

	for _, info := range f.Informacoes {
		venc := ""
		if info.PrimeiroVencimento != nil {
			venc = info.PrimeiroVencimento.Format(formatoDataExibicao)
		}
		n.Informacoes = append(n.Informacoes, documento.InformacaoPagamento{
			Tipo:               info.Tipo,
			Total:              moeda(info.Total),
			QtdParcelas:        fmt.Sprintf("%d", info.QtdParcelas),
			ValorParcela:       moeda(info.ValorParcela),
			FormaPagamento:     info.FormaPagamento,
			PrimeiroVencimento: venc,
		})
	}

	return n
}

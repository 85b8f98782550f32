// internal/documento/documento.go
package documento

// Estruturas de entrada do gerador de PDFs. São dados já formatados para
// exibição (datas DD/MM/YYYY, valores com duas casas): o chamador faz o
// mapeamento a partir dos modelos persistidos.

// DadosCliente carrega o cadastro impresso na primeira ficha.
type DadosCliente struct {
	Nome           string
	CPF            string
	RG             string
	OrgaoEmissor   string
	EstadoEmissor  string
	Profissao      string
	DataNascimento string
	EstadoCivil    string
	Email          string
	Telefone       string

	Logradouro     string
	NumeroEndereco string
	Bairro         string
	Complemento    string
	CEP            string
	Cidade         string
	UFEndereco     string

	NomeConjuge          string
	CPFConjuge           string
	RGConjuge            string
	OrgaoEmissorConjuge  string
	EstadoEmissorConjuge string
	ProfissaoConjuge     string
	EmailConjuge         string
	TelefoneConjuge      string
}

// ParcelaSala é uma linha da tabela de pagamentos recebidos em sala.
type ParcelaSala struct {
	Tipo             string
	ValorTotal       string
	ValorDistribuido string
	QuantidadeCotas  string
	FormasPagamento  []string
}

// Contrato é uma linha da tabela de unidades vendidas.
type Contrato struct {
	TipoContrato       string
	NomeEmpreendimento string
	Torre              string
	Apartamento        string
	Cota               string
	CategoriaPreco     string
	Valor              string
}

// InformacaoPagamento é uma linha do plano de pagamento.
type InformacaoPagamento struct {
	Tipo               string
	Total              string
	QtdParcelas        string
	ValorParcela       string
	FormaPagamento     string
	PrimeiroVencimento string
}

// DadosNegociacao carrega a ficha de negociação completa.
type DadosNegociacao struct {
	Liner        string
	Closer       string
	TipoVenda    string
	ParcelasSala []ParcelaSala
	Contratos    []Contrato
	Informacoes  []InformacaoPagamento
}

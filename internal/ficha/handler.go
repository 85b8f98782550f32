// internal/ficha/handler.go
package ficha

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gavresorts/api-ficha/internal/alerta"
	"github.com/gavresorts/api-ficha/internal/calculadora"
	"github.com/gavresorts/api-ficha/internal/cliente"
	"github.com/gavresorts/api-ficha/internal/empreendimento"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// MsgClienteNaoEncontrado orienta o vendedor a voltar à etapa de cadastro.
const MsgClienteNaoEncontrado = "Dados do cliente não encontrados. Volte ao cadastro do cliente."

type Handler struct {
	Repo            Repository
	Clientes        cliente.Repository
	Empreendimentos *empreendimento.Repository
	Enviador        *Enviador
}

func NewHandler(repo Repository, clientes cliente.Repository, emps *empreendimento.Repository, enviador *Enviador) *Handler {
	return &Handler{Repo: repo, Clientes: clientes, Empreendimentos: emps, Enviador: enviador}
}

// contextoNegociacao é o que a normalização resolve a partir dos contratos: o
// empreendimento ativo, sua categoria de preço e o valor do contrato.
type contextoNegociacao struct {
	NomeEmpreendimento string
	ValorContrato      float64
	Dados              *calculadora.DadosCategoria
}

// resolverContexto localiza o contrato ativo e busca o contexto de preço dele.
// Sem contrato ativo o contexto volta vazio, sem erro.
func (h *Handler) resolverContexto(contratos []ContratoDTO) (*contextoNegociacao, error) {
	ctx := &contextoNegociacao{}
	ativo := contratoAtivo(contratos)
	if ativo == nil {
		return ctx, nil
	}
	ctx.ValorContrato = ativo.Valor

	emp, err := h.Empreendimentos.BuscarPorID(ativo.EmpreendimentoID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if emp != nil {
		ctx.NomeEmpreendimento = emp.Nome
	}

	dados, err := h.Empreendimentos.BuscarDadosCategoria(ativo.EmpreendimentoID, ativo.CategoriaPreco)
	if err != nil {
		return nil, err
	}
	ctx.Dados = dados
	aplicarValorDaCategoria(ctx)
	return ctx, nil
}

// aplicarValorDaCategoria preenche o valor do contrato com o valor da cota da
// categoria quando o vendedor não informou um valor próprio.
func aplicarValorDaCategoria(ctx *contextoNegociacao) {
	if ctx.ValorContrato == 0 && ctx.Dados != nil {
		ctx.ValorContrato = ctx.Dados.ValorTotal
	}
}

// normalizar aplica o ciclo de recálculo sobre o plano antes de avaliar os
// alertas: preenche Sinal e Saldo pela categoria quando ainda vazios, refaz o
// Restante da Entrada pelo alvo do empreendimento e rederiva as datas.
func normalizar(plano *calculadora.Plano, ctx *contextoNegociacao, hoje time.Time) alerta.Resultado {
	if ctx.Dados != nil {
		sinal, saldo := plano.Sinal(), plano.Saldo()
		if sinal != nil && saldo != nil && sinal.Total == 0 && saldo.Total == 0 {
			plano.PreencherPorCategoria(*ctx.Dados)
		}
	}

	plano.RecalcularRestanteEntrada(calculadora.ValorEntrada(ctx.NomeEmpreendimento))

	if restante := plano.RestanteEntrada(); restante != nil && !restante.PrimeiroVencimento.IsZero() {
		qtdSinal := 1
		if sinal := plano.Sinal(); sinal != nil && sinal.QtdParcelas > 0 {
			qtdSinal = sinal.QtdParcelas
		}
		plano.AtualizarDatasInteligentes(restante.PrimeiroVencimento, restante.QtdParcelas, qtdSinal)
	}

	return alerta.Avaliar(plano, hoje)
}

// contratosDeDTO converte os contratos do formulário em linhas persistíveis,
// desnormalizando o nome do empreendimento.
func (h *Handler) contratosDeDTO(dtos []ContratoDTO) []Contrato {
	contratos := make([]Contrato, 0, len(dtos))
	for _, dto := range dtos {
		c := Contrato{
			TipoContrato:     dto.TipoContrato,
			EmpreendimentoID: dto.EmpreendimentoID,
			Torre:            dto.Torre,
			Apartamento:      dto.Apartamento,
			Cota:             dto.Cota,
			CategoriaPreco:   dto.CategoriaPreco,
			Valor:            dto.Valor,
		}
		if dto.EmpreendimentoID != 0 {
			if emp, err := h.Empreendimentos.BuscarPorID(dto.EmpreendimentoID); err == nil {
				c.NomeEmpreendimento = emp.Nome
			}
		}
		contratos = append(contratos, c)
	}
	return contratos
}

func parcelasSalaDeDTO(dtos []ParcelaSalaDTO) []ParcelaSala {
	parcelas := make([]ParcelaSala, 0, len(dtos))
	for _, dto := range dtos {
		sala := parcelaSalaDeDTO(dto)
		parcelas = append(parcelas, ParcelaSala{
			Tipo:             sala.Tipo,
			ValorTotal:       sala.ValorTotal,
			ValorDistribuido: sala.ValorDistribuido,
			QuantidadeCotas:  sala.QuantidadeCotas,
			FormasPagamento:  sala.FormasPagamento,
		})
	}
	return parcelas
}

// CriarFicha valida, normaliza e grava uma ficha de negociação. Erros de dado
// bloqueiam a gravação; alertas de autorização seguem na resposta sem impedir.
func (h *Handler) CriarFicha(w http.ResponseWriter, r *http.Request) {
	var dto CriarFichaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Clientes.BuscarPorID(dto.ClienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, MsgClienteNaoEncontrado, http.StatusPreconditionFailed)
			return
		}
		http.Error(w, "Erro ao buscar cliente", http.StatusInternalServerError)
		return
	}

	plano, err := planoDeDTO(dto.Informacoes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(plano.Informacoes) == 0 {
		plano = calculadora.NovoPlano()
	}

	ctx, err := h.resolverContexto(dto.Contratos)
	if err != nil {
		http.Error(w, "Erro ao buscar dados da categoria", http.StatusInternalServerError)
		return
	}

	resultado := normalizar(plano, ctx, time.Now())
	if resultado.TemErros() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(resultado)
		return
	}

	ficha := Ficha{
		SessaoID:     uuid.NewString(),
		ClienteID:    dto.ClienteID,
		Liner:        dto.Liner,
		Closer:       dto.Closer,
		TipoVenda:    dto.TipoVenda,
		ParcelasSala: parcelasSalaDeDTO(dto.ParcelasSala),
		Contratos:    h.contratosDeDTO(dto.Contratos),
		Informacoes:  linhasDePlano(plano),
	}

	if err := h.Repo.Criar(&ficha); err != nil {
		http.Error(w, "Erro ao salvar ficha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ficha":   ficha,
		"alertas": resultado,
	})
}

// Simular normaliza o estado do formulário sem persistir: devolve o plano
// recalculado, os alertas vigentes e a auditoria de valores.
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	var dto SimularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	plano, err := planoDeDTO(dto.Informacoes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(plano.Informacoes) == 0 {
		plano = calculadora.NovoPlano()
	}

	ctx, err := h.resolverContexto(dto.Contratos)
	if err != nil {
		http.Error(w, "Erro ao buscar dados da categoria", http.StatusInternalServerError)
		return
	}

	resultado := normalizar(plano, ctx, time.Now())
	auditoria := plano.AuditoriaValores(ctx.ValorContrato)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"informacoesPagamento": linhasDePlano(plano),
		"alertas":              resultado,
		"auditoria":            auditoria,
	})
}

func (h *Handler) ListarFichas(w http.ResponseWriter, r *http.Request) {
	var (
		lista []Ficha
		err   error
	)
	if clienteID := r.URL.Query().Get("clienteId"); clienteID != "" {
		id, convErr := strconv.ParseUint(clienteID, 10, 64)
		if convErr != nil {
			http.Error(w, "clienteId inválido", http.StatusBadRequest)
			return
		}
		lista, err = h.Repo.ListarPorCliente(uint(id))
	} else {
		lista, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Erro ao listar fichas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	ficha, ok := h.fichaDaRota(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ficha)
}

// Auditoria confere os valores da ficha gravada e devolve os alertas nos dois
// canais, mais o colapso legado para os consumidores antigos.
func (h *Handler) Auditoria(w http.ResponseWriter, r *http.Request) {
	ficha, ok := h.fichaDaRota(w, r)
	if !ok {
		return
	}

	plano := planoDeModelo(ficha.Informacoes)
	var valorContrato float64
	for _, c := range ficha.Contratos {
		if c.EmpreendimentoID != 0 && c.CategoriaPreco != "" {
			valorContrato = c.Valor
			break
		}
	}

	resultado := alerta.Avaliar(plano, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"auditoria":    plano.AuditoriaValores(valorContrato),
		"alertas":      resultado,
		"alertaLegado": resultado.ColapsarLegado(),
	})
}

func (h *Handler) DeletarFicha(w http.ResponseWriter, r *http.Request) {
	ficha, ok := h.fichaDaRota(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Deletar(ficha); err != nil {
		http.Error(w, "Erro ao deletar ficha", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Enviar dispara a geração dos PDFs e a entrega por email da ficha gravada.
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	ficha, ok := h.fichaDaRota(w, r)
	if !ok {
		return
	}

	resposta, err := h.Enviador.Enviar(r.Context(), ficha)
	if err != nil {
		if errors.Is(err, ErrClienteNaoEncontrado) {
			http.Error(w, MsgClienteNaoEncontrado, http.StatusPreconditionFailed)
			return
		}
		http.Error(w, "Erro ao gerar os documentos da ficha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

// fichaDaRota carrega a ficha apontada por {id}, respondendo 400/404 quando
// não dá. O segundo retorno indica se o chamador deve prosseguir.
func (h *Handler) fichaDaRota(w http.ResponseWriter, r *http.Request) (*Ficha, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	ficha, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Ficha não encontrada", http.StatusNotFound)
			return nil, false
		}
		http.Error(w, "Erro ao buscar ficha", http.StatusInternalServerError)
		return nil, false
	}
	return ficha, true
}

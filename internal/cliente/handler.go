// internal/cliente/handler.go
package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe o cadastro de clientes.
type Handler struct {
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

// CriarCliente trata POST /clientes
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if c.Nome == "" || c.CPF == "" {
		http.Error(w, "Os campos 'nome' e 'cpf' são obrigatórios", http.StatusBadRequest)
		return
	}

	// O mesmo CPF volta para o cadastro existente em vez de duplicar.
	if existente, err := h.Repository.BuscarPorCPF(c.CPF); err == nil {
		c.ID = existente.ID
		c.CreatedAt = existente.CreatedAt
		if err := h.Repository.Atualizar(&c); err != nil {
			http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c)
		return
	}

	if err := h.Repository.Criar(&c); err != nil {
		http.Error(w, "Erro ao criar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes trata GET /clientes
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarCliente trata PUT /clientes/{id}
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	var payload Cliente
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	payload.ID = existente.ID
	payload.CreatedAt = existente.CreatedAt
	if err := h.Repository.Atualizar(&payload); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// DeletarCliente trata DELETE /clientes/{id}
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repository.Deletar(c); err != nil {
		http.Error(w, "Erro ao deletar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// internal/empreendimento/handler.go
package empreendimento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe o catálogo de empreendimentos por HTTP.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Listar trata GET /empreendimentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar empreendimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /empreendimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	emp, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Empreendimento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar empreendimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(emp)
}

// Criar trata POST /empreendimentos (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var emp Empreendimento
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if emp.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if emp.Status == "" {
		emp.Status = "ATIVO"
	}

	if err := h.Repo.Criar(&emp); err != nil {
		http.Error(w, "Erro ao criar empreendimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(emp)
}

// ListarCategorias trata GET /empreendimentos/{id}/categorias
func (h *Handler) ListarCategorias(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	lista, err := h.Repo.ListarCategorias(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar categorias", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// CriarCategoria trata POST /empreendimentos/{id}/categorias (admin)
func (h *Handler) CriarCategoria(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var cat CategoriaPreco
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	cat.EmpreendimentoID = uint(id)
	if cat.CategoriaPreco == "" {
		http.Error(w, "O campo 'categoriaPreco' é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CriarCategoria(&cat); err != nil {
		http.Error(w, "Erro ao criar categoria", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cat)
}

// internal/vendedor/handler.go
package vendedor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gavresorts/api-ficha/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de vendedores.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type criarVendedorRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
	Senha string `json:"senha"`
	Admin bool   `json:"admin"`
}

// Criar trata POST /vendedores (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarVendedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		http.Error(w, "Os campos 'nome', 'email' e 'senha' são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "Erro ao gerar hash da senha", http.StatusInternalServerError)
		return
	}

	v := Vendedor{
		Nome:  req.Nome,
		Email: req.Email,
		Cargo: req.Cargo,
		Senha: hash,
		Admin: req.Admin,
	}
	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "Erro ao criar vendedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// ResetarSenha trata POST /vendedores/{id}/resetar-senha (admin). Gera uma
// senha temporária e a devolve na resposta para repasse manual.
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Vendedor não encontrado", http.StatusNotFound)
		return
	}

	senhaTemporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "Erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senhaTemporaria)
	if err != nil {
		http.Error(w, "Erro ao gerar hash da senha", http.StatusInternalServerError)
		return
	}

	v.Senha = hash
	if err := h.Repo.DB.Save(v).Error; err != nil {
		http.Error(w, "Erro ao salvar senha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": senhaTemporaria})
}

// Listar trata GET /vendedores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar vendedores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /vendedores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Vendedor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

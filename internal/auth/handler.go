package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gavresorts/api-ficha/internal/utils"
	"github.com/gavresorts/api-ficha/internal/vendedor"
	"gorm.io/gorm"
)

// LoginHandler autentica um vendedor por email e senha e devolve o token.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := vendedor.NewRepository(db)

	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON mal formado", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		user, err := repo.BuscarPorEmail(req.Email)
		if err != nil {
			http.Error(w, "Usuário não encontrado", http.StatusUnauthorized)
			return
		}

		if !utils.VerificarSenha(user.Senha, req.Senha) {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(user.ID, user.Admin)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token":    token,
			"vendedor": user,
		})
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gavresorts/api-ficha/internal/auth"
	"github.com/gavresorts/api-ficha/internal/cliente"
	"github.com/gavresorts/api-ficha/internal/email"
	"github.com/gavresorts/api-ficha/internal/empreendimento"
	"github.com/gavresorts/api-ficha/internal/ficha"
	"github.com/gavresorts/api-ficha/internal/utils/db"
	"github.com/gavresorts/api-ficha/internal/vendedor"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// Migrações
	if err := cliente.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de clientes:", err)
	}
	if err := vendedor.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de vendedores:", err)
	}
	if err := empreendimento.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de empreendimentos:", err)
	}
	if err := ficha.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate de fichas:", err)
	}

	if err := empreendimento.Seed(database); err != nil {
		log.Fatal("Erro ao popular o catálogo:", err)
	}

	// Handlers
	clienteHandler := cliente.NewHandler(database)
	vendedorHandler := vendedor.NewHandler(database)
	empreendimentoHandler := empreendimento.NewHandler(database)

	clienteRepo := cliente.NewRepository(database)
	enviador := ficha.NewEnviador(clienteRepo, email.NovoServico())
	fichaHandler := ficha.NewHandler(
		ficha.NewRepository(database),
		clienteRepo,
		empreendimento.NewRepository(database),
		enviador,
	)

	// Router
	r := mux.NewRouter()

	// Rota pública de autenticação
	r.HandleFunc("/login", auth.LoginHandler(database)).Methods("POST", "OPTIONS")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de empreendimentos
	api.HandleFunc("/empreendimentos", empreendimentoHandler.Listar).Methods("GET")
	api.HandleFunc("/empreendimentos/{id}", empreendimentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empreendimentos/{id}/categorias", empreendimentoHandler.ListarCategorias).Methods("GET")

	// Rotas de fichas
	api.HandleFunc("/fichas", fichaHandler.CriarFicha).Methods("POST")
	api.HandleFunc("/fichas", fichaHandler.ListarFichas).Methods("GET")
	api.HandleFunc("/fichas/simular", fichaHandler.Simular).Methods("POST")
	api.HandleFunc("/fichas/{id}", fichaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/fichas/{id}", fichaHandler.DeletarFicha).Methods("DELETE")
	api.HandleFunc("/fichas/{id}/auditoria", fichaHandler.Auditoria).Methods("GET")
	api.HandleFunc("/fichas/{id}/enviar", fichaHandler.Enviar).Methods("POST")

	// Rotas administrativas
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)
	admin.HandleFunc("/vendedores", vendedorHandler.Criar).Methods("POST")
	admin.HandleFunc("/vendedores", vendedorHandler.Listar).Methods("GET")
	admin.HandleFunc("/vendedores/{id}", vendedorHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/vendedores/{id}/resetar-senha", vendedorHandler.ResetarSenha).Methods("POST")
	admin.HandleFunc("/empreendimentos", empreendimentoHandler.Criar).Methods("POST")
	admin.HandleFunc("/empreendimentos/{id}/categorias", empreendimentoHandler.CriarCategoria).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}

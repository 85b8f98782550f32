// internal/empreendimento/seed.go
package empreendimento

import (
	"log"

	"gorm.io/gorm"
)

// Seed popula o catálogo inicial quando o banco está vazio: os três resorts e
// as tabelas de preço de lançamento.
func Seed(db *gorm.DB) error {
	var total int64
	if err := db.Model(&Empreendimento{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	log.Println("Catálogo vazio, criando empreendimentos iniciais...")

	empreendimentos := []Empreendimento{
		{
			Nome:      "Gran Garden",
			Descricao: "Resort Gran Garden",
			Torres: []Torre{
				{Nome: "Torre A", Descricao: "Torre A - Gran Garden"},
				{Nome: "Torre B", Descricao: "Torre B - Gran Garden"},
			},
			Categorias: []CategoriaPreco{
				{CategoriaPreco: "Bronze", VirCota: 45000, TotalEntrada: 4490, TotalSinal: 15000, TotalSaldo: 25510, SinalQtd: 12, SaldoQtd: 60, PercentualEntrada: 10, PercentualSinal: 33, PercentualSaldo: 57},
				{CategoriaPreco: "Prata", VirCota: 65000, TotalEntrada: 4490, TotalSinal: 20000, TotalSaldo: 40510, SinalQtd: 12, SaldoQtd: 60, PercentualEntrada: 7, PercentualSinal: 31, PercentualSaldo: 62},
				{CategoriaPreco: "Ouro", VirCota: 85000, TotalEntrada: 4490, TotalSinal: 25000, TotalSaldo: 55510, SinalQtd: 12, SaldoQtd: 60, PercentualEntrada: 5, PercentualSinal: 29, PercentualSaldo: 66},
			},
		},
		{
			Nome:      "Gran Valley",
			Descricao: "Resort Gran Valley",
			Torres: []Torre{
				{Nome: "Torre Central", Descricao: "Torre Central - Gran Valley"},
				{Nome: "Torre Norte", Descricao: "Torre Norte - Gran Valley"},
			},
			Categorias: []CategoriaPreco{
				{CategoriaPreco: "Bronze", VirCota: 50000, TotalEntrada: 4490, TotalSinal: 16000, TotalSaldo: 29510, SinalQtd: 12, SaldoQtd: 60, PercentualEntrada: 9, PercentualSinal: 32, PercentualSaldo: 59},
				{CategoriaPreco: "Prata", VirCota: 70000, TotalEntrada: 4490, TotalSinal: 22000, TotalSaldo: 43510, SinalQtd: 12, SaldoQtd: 60, PercentualEntrada: 6, PercentualSinal: 31, PercentualSaldo: 63},
			},
		},
		{
			Nome:      "Paradise Resort",
			Descricao: "Paradise Resort Premium",
			Torres: []Torre{
				{Nome: "Torre Sul", Descricao: "Torre Sul - Paradise Resort"},
			},
		},
	}

	for i := range empreendimentos {
		if err := db.Create(&empreendimentos[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Catálogo inicial criado: %d empreendimentos", len(empreendimentos))
	return nil
}

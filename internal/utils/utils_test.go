package utils

import (
	"strings"
	"testing"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !VerificarSenha(hash, "segredo123") {
		t.Fatal("senha correta não verificou")
	}
	if VerificarSenha(hash, "outra") {
		t.Fatal("senha errada verificou")
	}
}

func TestGerarSenhaTemporaria(t *testing.T) {
	senha, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(senha) != tamanhoSenhaTemporaria {
		t.Fatalf("esperava %d caracteres, obteve %d", tamanhoSenhaTemporaria, len(senha))
	}
	for _, r := range senha {
		if !strings.ContainsRune(alfabetoSenha, r) {
			t.Fatalf("caractere fora do alfabeto: %q", r)
		}
	}
}

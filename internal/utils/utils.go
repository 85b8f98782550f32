package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Alfabeto das senhas temporárias geradas no reset de acesso de vendedor.
const alfabetoSenha = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const tamanhoSenhaTemporaria = 12

// HashSenha gera o hash bcrypt da senha de um vendedor.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha confere a senha em texto contra o hash armazenado.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// GerarSenhaTemporaria sorteia uma senha de 12 caracteres para o fluxo de
// reset, usando o gerador criptográfico do sistema.
func GerarSenhaTemporaria() (string, error) {
	senha := make([]byte, tamanhoSenhaTemporaria)
	limite := big.NewInt(int64(len(alfabetoSenha)))
	for i := range senha {
		posicao, err := rand.Int(rand.Reader, limite)
		if err != nil {
			return "", err
		}
		senha[i] = alfabetoSenha[posicao.Int64()]
	}
	return string(senha), nil
}

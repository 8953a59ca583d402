package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSessionID gera o identificador opaco de uma sessão de credenciais
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, 21)
}

// GenerateStateNonce gera o state anti-CSRF usado no fluxo de autorização
func GenerateStateNonce() (string, error) {
	return gonanoid.Generate(characters, 16)
}

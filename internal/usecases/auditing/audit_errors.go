package auditing

import "errors"

// ErrMissingBaseline indica que a consulta agregada de sessões e usuários
// não devolveu a linha base; sem ela nenhum resumo faz sentido e a auditoria
// inteira falha
var ErrMissingBaseline = errors.New("sem dados de sessões e usuários para a janela auditada")

package sheetsclient

import "errors"

// ErrSpreadsheetNotFound indica que a planilha de destino não existe ou a
// sessão não tem acesso a ela
var ErrSpreadsheetNotFound = errors.New("planilha de destino não encontrada")

// ErrSheetCreationRejected indica que o destino recusou a criação de uma nova
// aba; o exportador cai para limpar a aba padrão
var ErrSheetCreationRejected = errors.New("destino recusou a criação da aba")

// WriteRejectedError indica que o destino recusou a escrita (permissão ou
// cota); a mensagem da API é preservada para o chamador
type WriteRejectedError struct {
	StatusCode int
	Message    string
}

func (e *WriteRejectedError) Error() string {
	return e.Message
}

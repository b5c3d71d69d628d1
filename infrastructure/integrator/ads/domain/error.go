package adsdomain

import (
	"errors"
	"fmt"
)

// ErrorResponse representa a estrutura de erro da API da plataforma de anúncios
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	TraceID      string `json:"trace_id,omitempty"`
}

// Códigos de erro conhecidos da plataforma
const (
	CodeUnknown          = 1
	CodeServiceUnvail    = 2
	CodeTooManyCalls     = 4
	CodeUserRequestLimit = 17
	CodePageRequestLimit = 32
	CodeInvalidParameter = 100
	CodeCustomRateLimit  = 613
)

// RemoteError é o erro retornado pelas chamadas à plataforma remota. A
// classificação entre retryable e permanente dirige a política de retry do
// motor de execução.
type RemoteError struct {
	Code       int
	Subcode    int
	Message    string
	StatusCode int
}

func (e *RemoteError) Error() string {
	if e.Subcode != 0 {
		return fmt.Sprintf("ads api error (code=%d, subcode=%d): %s", e.Code, e.Subcode, e.Message)
	}
	return fmt.Sprintf("ads api error (code=%d): %s", e.Code, e.Message)
}

// Retryable indica se o erro é transitório (rate limit, indisponibilidade)
func (e *RemoteError) Retryable() bool {
	switch e.Code {
	case CodeTooManyCalls, CodeUserRequestLimit, CodePageRequestLimit, CodeCustomRateLimit:
		return true
	case CodeUnknown, CodeServiceUnvail:
		return true
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// NotFound indica que a entidade remota não existe
func (e *RemoteError) NotFound() bool {
	// Subcódigo 33 acompanha "Unsupported get request" quando o objeto não existe
	return e.Code == CodeInvalidParameter && e.Subcode == 33
}

// IsRetryable verifica se um erro qualquer é um RemoteError transitório.
// Falhas de rede (sem resposta da API) também contam como transitórias.
func IsRetryable(err error) bool {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Retryable()
	}

	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// NetworkError representa uma falha de comunicação antes de qualquer resposta
// da plataforma
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("ads api network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

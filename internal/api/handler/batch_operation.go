package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/batching"
	"github.com/ivstraffic/batch-operations-api/pkg/apiErrors"
)

func CreateBatchOperation(service batching.BatchService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBatchOperation")

		var request domain.CreateBatchOperationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		batch, err := service.Create(&request)
		if err != nil {
			logrus.Error("Error creating batch operation:", err)
			handleBatchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(batch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListBatchOperations(service batching.BatchService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var status *domain.BatchOperationStatus
		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			s := domain.BatchOperationStatus(filterStatus)
			if !s.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de filtro desconhecido: "+filterStatus, nil)
				return
			}
			status = &s
		}

		batches, err := service.List(status)
		if err != nil {
			logrus.Error("Error listing batch operations:", err)
			handleBatchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(batches); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetBatchOperation(service batching.BatchService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lote é obrigatório", nil)
			return
		}

		batch, err := service.Get(id)
		if err != nil {
			logrus.Error("Error fetching batch operation:", err)
			handleBatchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(batch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateBatchOperation(service batching.BatchService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBatchOperation")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lote é obrigatório", nil)
			return
		}

		var request domain.UpdateBatchOperationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = id

		batch, err := service.Update(&request)
		if err != nil {
			logrus.Error("Error updating batch operation:", err)
			handleBatchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(batch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handleBatchError traduz erros do serviço de lotes para respostas da API
func handleBatchError(w http.ResponseWriter, err error) {
	// Verificar se é um BatchError para obter detalhes específicos do erro
	var batchErr *batching.BatchError
	if errors.As(err, &batchErr) {
		var details map[string]any
		if batchErr.BatchID != "" {
			details = map[string]any{"batch_id": batchErr.BatchID}
		}
		apiErrors.WriteError(w, batchErr.Code, batchErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, batching.ErrBatchNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBatchNotFound, "Lote não encontrado", nil)

	case errors.Is(err, batching.ErrEmptyItems):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O lote deve conter ao menos um item", nil)

	case errors.Is(err, batching.ErrInvalidOperationType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de operação desconhecido", nil)

	case errors.Is(err, batching.ErrChangeMismatch):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Alteração proposta incompatível com o tipo de operação do lote", nil)

	case errors.Is(err, batching.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Transição de status não permitida para o estado atual do lote", nil)

	case errors.Is(err, batching.ErrConcurrentExecutionRejected):
		apiErrors.WriteError(w, apiErrors.ErrConcurrentExecution, "O lote já está em processamento por outra requisição", nil)

	case errors.Is(err, batching.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lotes no banco de dados", nil)

	case errors.Is(err, batching.ErrGenerateID):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificadores únicos", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar lote", nil)
	}
}

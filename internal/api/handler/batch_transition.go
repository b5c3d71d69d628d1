package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/batching"
	"github.com/ivstraffic/batch-operations-api/pkg/apiErrors"
)

// transitionHandler fabrica handlers para as transições de status do lote,
// que compartilham o mesmo formato de requisição e resposta.
func transitionHandler(name string, fn func(batchID string) (*domain.BatchOperation, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Infof("INIT - %s", name)

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lote é obrigatório", nil)
			return
		}

		batch, err := fn(id)
		if err != nil {
			logrus.WithField("batch_id", id).Errorf("Error on %s: %v", name, err)
			handleBatchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(batch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ApproveBatchOperation(service batching.BatchService) http.Handler {
	return transitionHandler("ApproveBatchOperation", service.Approve)
}

func CancelBatchOperation(service batching.BatchService) http.Handler {
	return transitionHandler("CancelBatchOperation", service.Cancel)
}

// ExecuteBatchOperation dispara a execução do lote. O processamento dos itens
// segue em segundo plano; a resposta reflete o lote já em status executing.
func ExecuteBatchOperation(service batching.BatchService) http.Handler {
	return transitionHandler("ExecuteBatchOperation", service.Execute)
}

// RollbackBatchOperation dispara a reversão de um lote concluído.
func RollbackBatchOperation(service batching.BatchService) http.Handler {
	return transitionHandler("RollbackBatchOperation", service.Rollback)
}

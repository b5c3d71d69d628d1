package executing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
)

// Rollback reaplica o inverso de cada item aplicado com sucesso, usando o
// snapshot persistido antes da mutação. Itens failed ou pending nunca tiveram
// mutação remota e não são tocados.
func (e *Engine) Rollback(ctx context.Context, batch *domain.BatchOperation) (*domain.RollbackResult, error) {
	startTime := time.Now()

	items, err := e.itemRepo.ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusSuccess)
	if err != nil {
		logrus.WithField("batch_id", batch.ID).WithError(err).Error("Erro ao carregar itens aplicados para rollback")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":       batch.ID,
		"operation_type": batch.OperationType,
		"items":          len(items),
		"workers":        e.config.MaxConcurrentWorkers,
	}).Info("Iniciando rollback do lote")

	outcomes := make(chan bool, len(items))
	aggregatorDone := make(chan struct{})

	var rolledBack, failedRollbacks int

	go func() {
		defer close(aggregatorDone)

		for reverted := range outcomes {
			if reverted {
				rolledBack++
			} else {
				failedRollbacks++
			}
		}
	}()

	semaphore := make(chan struct{}, e.config.MaxConcurrentWorkers)
	var wg sync.WaitGroup

	for _, item := range items {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(item *domain.BatchOperationItem) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			outcomes <- e.revertItem(ctx, batch.OperationType, item)
		}(item)
	}

	wg.Wait()
	close(outcomes)
	<-aggregatorDone

	logrus.WithFields(logrus.Fields{
		"batch_id":         batch.ID,
		"rolled_back":      rolledBack,
		"failed_rollbacks": failedRollbacks,
		"duration":         time.Since(startTime).String(),
	}).Info("Rollback do lote finalizado")

	return &domain.RollbackResult{
		RolledBackItems: rolledBack,
		FailedRollbacks: failedRollbacks,
	}, nil
}

// revertItem aplica o inverso de um item. Em caso de falha o item permanece
// success, nunca marcado como revertido silenciosamente, para que itens não
// revertidos continuem auditáveis.
func (e *Engine) revertItem(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) bool {
	logger := logrus.WithFields(logrus.Fields{
		"batch_id":  item.BatchID,
		"item_id":   item.ID,
		"entity_id": item.EntityID,
	})

	if len(item.PreviousState) == 0 {
		logger.Error("Item aplicado sem snapshot persistido, rollback impossível")
		return false
	}

	err := e.withRetry(ctx, func() error {
		return e.mutator.ApplyInverse(ctx, operationType, item)
	})
	if err != nil {
		logger.WithError(err).Warn("Erro ao aplicar mutação inversa do item, status mantido em success")
		return false
	}

	if err := e.itemRepo.MarkRolledBack(item.ID); err != nil {
		logger.WithError(err).Error("Erro ao gravar rollback do item")
	}

	logger.Debug("Item revertido ao estado anterior")
	return true
}

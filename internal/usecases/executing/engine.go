package executing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
	"github.com/ivstraffic/batch-operations-api/infrastructure/repository"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
)

// EngineConfig representa os limites de execução de um lote
type EngineConfig struct {
	MaxConcurrentWorkers int
	MaxRetries           int
	RetryBackoff         time.Duration
}

// Engine aplica e reverte os itens de um lote contra a plataforma remota com
// concorrência limitada. A falha de um item nunca interrompe os demais.
type Engine struct {
	batchRepo repository.BatchOperationRepository
	itemRepo  repository.BatchOperationItemRepository
	mutator   ads.Mutator
	config    EngineConfig
}

func NewEngine(
	batchRepo repository.BatchOperationRepository,
	itemRepo repository.BatchOperationItemRepository,
	mutator ads.Mutator,
	appConfig *config.Config,
) *Engine {
	engineConfig := EngineConfig{
		MaxConcurrentWorkers: appConfig.BatchExecution.MaxConcurrentWorkers,
		MaxRetries:           appConfig.BatchExecution.MaxRetries,
		RetryBackoff:         time.Duration(appConfig.BatchExecution.RetryBackoffSeconds) * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"max_concurrent_workers": engineConfig.MaxConcurrentWorkers,
		"max_retries":            engineConfig.MaxRetries,
		"retry_backoff":          engineConfig.RetryBackoff.String(),
	}).Info("Configuração do motor de execução de lotes carregada")

	return &Engine{
		batchRepo: batchRepo,
		itemRepo:  itemRepo,
		mutator:   mutator,
		config:    engineConfig,
	}
}

// Execute processa todos os itens pendentes do lote. O chamador já levou o
// lote para executing; aqui o status terminal só é gravado depois que todos os
// workers reportaram o desfecho de seus itens.
func (e *Engine) Execute(ctx context.Context, batch *domain.BatchOperation) (*domain.ExecutionResult, error) {
	startTime := time.Now()

	items, err := e.itemRepo.ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusPending)
	if err != nil {
		logrus.WithField("batch_id", batch.ID).WithError(err).Error("Erro ao carregar itens do lote para execução")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":       batch.ID,
		"operation_type": batch.OperationType,
		"items":          len(items),
		"workers":        e.config.MaxConcurrentWorkers,
	}).Info("Iniciando execução do lote")

	// Um único agregador recebe os desfechos dos workers e atualiza os
	// contadores do agregado, evitando read-modify-write concorrente
	outcomes := make(chan bool, len(items))
	aggregatorDone := make(chan struct{})

	var processed, succeeded, failed int

	go func() {
		defer close(aggregatorDone)

		for success := range outcomes {
			processed++
			if success {
				succeeded++
			} else {
				failed++
			}

			if err := e.batchRepo.UpdateCounters(batch.ID, processed, succeeded, failed); err != nil {
				logrus.WithField("batch_id", batch.ID).WithError(err).Error("Erro ao atualizar contadores do lote")
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

			outcomes <- e.applyItem(ctx, batch.OperationType, item)
		}(item)
	}

	// Barreira: os contadores finais e o status terminal só são gravados
	// depois que todos os itens reportaram
	wg.Wait()
	close(outcomes)
	<-aggregatorDone

	// Sucesso parcial ainda é completed: mudanças remotas aconteceram e
	// precisam ficar rastreáveis para rollback. failed exige zero sucessos.
	terminalStatus := domain.BatchStatusCompleted
	if succeeded == 0 {
		terminalStatus = domain.BatchStatusFailed
	}

	swapped, err := e.batchRepo.FinishExecution(batch.ID, terminalStatus, processed, succeeded, failed)
	if err != nil {
		logrus.WithField("batch_id", batch.ID).WithError(err).Error("Erro ao gravar status terminal do lote")
		return nil, err
	}

	if !swapped {
		logrus.WithField("batch_id", batch.ID).Warn("Lote não estava mais em executing ao gravar status terminal")
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": batch.ID,
		"status":   terminalStatus,
		"success":  succeeded,
		"failed":   failed,
		"duration": time.Since(startTime).String(),
	}).Info("Execução do lote finalizada")

	return &domain.ExecutionResult{
		TotalItems:   len(items),
		SuccessItems: succeeded,
		FailedItems:  failed,
	}, nil
}

// applyItem processa um único item: captura o snapshot do estado remoto,
// persiste, aplica a mutação e grava o desfecho. A ordem leitura → aplicação →
// registro nunca é invertida.
func (e *Engine) applyItem(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) bool {
	logger := logrus.WithFields(logrus.Fields{
		"batch_id":  item.BatchID,
		"item_id":   item.ID,
		"entity_id": item.EntityID,
	})

	var snapshot []byte
	err := e.withRetry(ctx, func() error {
		state, err := e.mutator.ReadCurrentState(ctx, operationType, item)
		if err != nil {
			return err
		}
		snapshot = state
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("Erro ao capturar estado atual da entidade remota")
		e.markFailed(item, err)
		return false
	}

	// O snapshot precisa estar persistido antes de qualquer tentativa de
	// mutação, para que um efeito parcial ainda seja reversível
	if err := e.itemRepo.SavePreviousState(item.ID, snapshot); err != nil {
		logger.WithError(err).Error("Erro ao persistir snapshot do item, mutação não será tentada")
		e.markFailed(item, err)
		return false
	}
	item.PreviousState = snapshot

	err = e.withRetry(ctx, func() error {
		return e.mutator.ApplyChange(ctx, operationType, item)
	})
	if err != nil {
		logger.WithError(err).Warn("Erro ao aplicar mutação do item")
		e.markFailed(item, err)
		return false
	}

	if err := e.itemRepo.MarkSuccess(item.ID); err != nil {
		logger.WithError(err).Error("Erro ao gravar sucesso do item")
	}

	logger.Debug("Item aplicado com sucesso")
	return true
}

// withRetry executa fn e repete com backoff linear enquanto o erro for
// transitório, até o limite configurado
func (e *Engine) withRetry(ctx context.Context, fn func() error) error {
	var err error

	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if !adsdomain.IsRetryable(err) || attempt >= e.config.MaxRetries {
			return err
		}

		backoff := e.config.RetryBackoff * time.Duration(attempt+1)
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"backoff": backoff.String(),
		}).WithError(err).Debug("Erro transitório da plataforma, aguardando para repetir")

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (e *Engine) markFailed(item *domain.BatchOperationItem, cause error) {
	if err := e.itemRepo.MarkFailed(item.ID, cause.Error()); err != nil {
		logrus.WithFields(logrus.Fields{
			"batch_id": item.BatchID,
			"item_id":  item.ID,
		}).WithError(err).Error("Erro ao gravar falha do item")
	}
}

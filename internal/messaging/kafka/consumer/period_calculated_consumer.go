package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Pachosan13/7granos-app-sub000/internal/events"
	"github.com/Pachosan13/7granos-app-sub000/internal/proforma"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePeriodCalculated membangun proforma otomatis begitu sebuah periode
// selesai dihitung. Error bisnis (chart belum lengkap, totals hilang) bersifat
// permanen: pesan di-commit dan dicatat supaya tidak diulang tanpa henti;
// error infrastruktur dibiarkan tanpa commit agar di-retry.
func ConsumePeriodCalculated(
	ctx context.Context,
	reader *kafkago.Reader,
	proformaService proforma.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.period_calculated")
	log.Info("period calculated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("period calculated consumer stopped")
				return
			}
			log.Error("fetch period calculated message failed", zap.Error(err))
			continue
		}

		var event events.PeriodCalculatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode period_calculated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = proformaService.Generate(ctx, event.BranchID, event.PeriodID)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				log.Warn("proforma generation rejected, skipping event",
					zap.String("period_id", event.PeriodID),
					zap.String("branch_id", event.BranchID),
					zap.String("code", appErr.Code),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("proforma generation failed",
				zap.String("period_id", event.PeriodID),
				zap.String("branch_id", event.BranchID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit period calculated message failed", zap.Error(err))
			continue
		}

		log.Info("proforma generated from period_calculated event",
			zap.String("period_id", event.PeriodID),
			zap.String("branch_id", event.BranchID),
		)
	}
}

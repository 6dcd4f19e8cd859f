package schema

import (
	"context"

	tabledrv "github.com/lakedocs/lakedocs/adapters/drivers/table"
	"github.com/lakedocs/lakedocs/domain/model"
	"github.com/lakedocs/lakedocs/internal/logging"
)

// ExtractInput is the table batch to read schemas for.
type ExtractInput struct {
	Tables []model.TableDescriptor `json:"tables"`
}

// ExtractOutput holds the successfully read triples, in input order.
type ExtractOutput struct {
	Schemas []model.TableSchema `json:"schemas"`
}

// Extract reads schema and metadata for every Delta table in the batch.
// The storage credential is acquired once per batch, not per table.
// Tables of other formats are silently excluded. A table that fails to
// open is logged and skipped; extraction never aborts the batch.
func (u *UseCase) Extract(ctx context.Context, in *ExtractInput) (*ExtractOutput, error) {
	logger := logging.FromContext(ctx)
	logger.Info(ctx, "starting schema extraction", "tables", len(in.Tables))

	token, err := u.Tokens.StorageToken(ctx)
	if err != nil {
		return nil, err
	}
	opts := tabledrv.Options{BearerToken: token, UseFabricEndpoint: true}

	out := &ExtractOutput{}
	for _, t := range in.Tables {
		if !t.IsDelta() {
			continue
		}
		logger.Debug(ctx, "processing delta table", "table", t.Name, "location", t.Location)
		s, m, err := u.Reader.Open(ctx, t.Location, opts)
		if err != nil {
			logger.Error(ctx, "failed to process table", "table", t.Name, "err", err)
			continue
		}
		out.Schemas = append(out.Schemas, model.TableSchema{Table: t, Schema: *s, Metadata: *m})
		logger.Info(ctx, "processed table", "table", t.Name)
	}
	return out, nil
}

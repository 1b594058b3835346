// Package seed loads catalog fixtures (resources, variants, operators) from YAML.
// The booking core only reads these tables; in production they are owned by
// other services.
package seed

import (
	"context"
	"io"
	"log/slog"

	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/infra"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Fixtures struct {
	Resources []ResourceFixture `yaml:"resources"`
	Operators []OperatorFixture `yaml:"operators"`
}

type ResourceFixture struct {
	ID       uuid.UUID        `yaml:"id"`
	Make     string           `yaml:"make"`
	Model    string           `yaml:"model"`
	Year     int              `yaml:"year"`
	Variants []VariantFixture `yaml:"variants"`
}

type VariantFixture struct {
	ID    uuid.UUID `yaml:"id"`
	Label string    `yaml:"label"`
}

type OperatorFixture struct {
	ID      string  `yaml:"id"`
	Phone   *string `yaml:"phone"`
	Address *string `yaml:"address"`
}

type Counts struct {
	Resources int
	Variants  int
	Operators int
}

type CatalogWriter interface {
	UpsertResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertResourceParams) error
	UpsertVariant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertVariantParams) error
	UpsertOperator(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertOperatorParams) error
}

type TxRunner interface {
	WithinDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// Parse decodes and validates fixtures. Unknown keys are rejected so typos in
// hand-written files do not silently drop rows.
func Parse(r io.Reader) (Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errs.Is(err, io.EOF) {
			return Fixtures{}, nil
		}
		return Fixtures{}, errs.Wrap(err, "failed to decode fixtures")
	}
	if err := f.normalize(); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

func (f *Fixtures) normalize() error {
	for i := range f.Resources {
		r := &f.Resources[i]
		if r.ID == uuid.Nil {
			return errs.Newf("resource #%d: id is required", i+1)
		}
		valid, err := resource.NewResource(r.ID, r.Make, r.Model, r.Year)
		if err != nil {
			return errs.Wrapf(err, "resource %s", r.ID)
		}
		r.Make, r.Model = valid.Make, valid.Model

		if len(r.Variants) == 0 {
			return errs.Newf("resource %s: at least one variant is required", r.ID)
		}
		for j, v := range r.Variants {
			if v.ID == uuid.Nil {
				return errs.Newf("resource %s variant #%d: id is required", r.ID, j+1)
			}
			if v.Label == "" {
				return errs.Newf("resource %s variant %s: label is required", r.ID, v.ID)
			}
		}
	}

	for i := range f.Operators {
		id, err := operator.NormalizeID(f.Operators[i].ID)
		if err != nil {
			return errs.Wrapf(err, "operator #%d", i+1)
		}
		f.Operators[i].ID = id
	}
	return nil
}

// Apply upserts every fixture in one transaction.
func Apply(ctx context.Context, runner TxRunner, w CatalogWriter, f Fixtures) (Counts, error) {
	var c Counts
	err := runner.WithinDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		c = Counts{}
		for _, r := range f.Resources {
			if err := w.UpsertResource(ctx, db, sqlc.UpsertResourceParams{
				ID:    r.ID,
				Make:  r.Make,
				Model: r.Model,
				Year:  int32(r.Year), // #nosec G115 -- bounded by resource.NewResource
			}); err != nil {
				return infra.WrapRepoErr("failed to upsert resource", err)
			}
			c.Resources++

			for _, v := range r.Variants {
				if err := w.UpsertVariant(ctx, db, sqlc.UpsertVariantParams{
					ID:         v.ID,
					ResourceID: r.ID,
					Label:      v.Label,
				}); err != nil {
					return infra.WrapRepoErr("failed to upsert variant", err)
				}
				c.Variants++
			}
		}

		for _, o := range f.Operators {
			if err := w.UpsertOperator(ctx, db, sqlc.UpsertOperatorParams{
				ID:      o.ID,
				Phone:   pgconv.StringPtrToPgtype(o.Phone),
				Address: pgconv.StringPtrToPgtype(o.Address),
			}); err != nil {
				return infra.WrapRepoErr("failed to upsert operator", err)
			}
			c.Operators++
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	slog.Info("fixtures applied",
		slog.Int("resources", c.Resources),
		slog.Int("variants", c.Variants),
		slog.Int("operators", c.Operators))
	return c, nil
}

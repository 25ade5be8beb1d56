package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/xyzruben/steward/constants"
	"github.com/xyzruben/steward/db/ent/schema/utils"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

var errNegativeTotal = errors.New("total must be non-negative")
var errConfidenceBounds = errors.New("confidence_score must be within [0,1]")

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Owner id comes from the auth collaborator; there is no users
		// table here, the column is the sole isolation mechanism.
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("merchant").NotEmpty(),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Validate(func(f float64) error {
				if f < 0 {
					return errNegativeTotal
				}
				return nil
			}),
		field.Time("purchase_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("category").Optional().Nillable(),
		field.String("subcategory").Optional().Nillable(),
		field.Float("confidence_score").Optional().Nillable().
			Validate(func(f float64) error {
				if f < 0 || f > 1 {
					return errConfidenceBounds
				}
				return nil
			}),
		field.String("summary").Optional().Nillable(),
		field.Text("raw_text").Optional().Nillable(),
		field.String("image_url").NotEmpty(),
		field.String("status").
			Default(string(constants.StatusProcessing)).
			Validate(utils.EnumValidator(constants.AllStatuses()...)),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "purchase_date"),
		index.Fields("user_id", "category"),
	}
}

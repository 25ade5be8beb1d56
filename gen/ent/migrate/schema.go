// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "merchant", Type: field.TypeString},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "purchase_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "image_url", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PROCESSING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1]},
			},
			{
				Name:    "receipt_user_id_purchase_date",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[4]},
			},
			{
				Name:    "receipt_user_id_category",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReceiptsTable,
	}
)

func init() {
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
}

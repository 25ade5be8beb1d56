// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/xyzruben/steward/db/ent/schema"
	"github.com/xyzruben/steward/gen/ent/receipt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescMerchant is the schema descriptor for merchant field.
	receiptDescMerchant := receiptFields[2].Descriptor()
	// receipt.MerchantValidator is a validator for the "merchant" field. It is called by the builders before save.
	receipt.MerchantValidator = receiptDescMerchant.Validators[0].(func(string) error)
	// receiptDescTotal is the schema descriptor for total field.
	receiptDescTotal := receiptFields[3].Descriptor()
	// receipt.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	receipt.TotalValidator = receiptDescTotal.Validators[0].(func(float64) error)
	// receiptDescConfidenceScore is the schema descriptor for confidence_score field.
	receiptDescConfidenceScore := receiptFields[7].Descriptor()
	// receipt.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	receipt.ConfidenceScoreValidator = receiptDescConfidenceScore.Validators[0].(func(float64) error)
	// receiptDescImageURL is the schema descriptor for image_url field.
	receiptDescImageURL := receiptFields[10].Descriptor()
	// receipt.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	receipt.ImageURLValidator = receiptDescImageURL.Validators[0].(func(string) error)
	// receiptDescStatus is the schema descriptor for status field.
	receiptDescStatus := receiptFields[11].Descriptor()
	// receipt.DefaultStatus holds the default value on creation for the status field.
	receipt.DefaultStatus = receiptDescStatus.Default.(string)
	// receipt.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	receipt.StatusValidator = receiptDescStatus.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[12].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[13].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/event"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
	"github.com/roundtable-ai/roundtable/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentversionFields := schema.DocumentVersion{}.Fields()
	_ = documentversionFields
	// documentversionDescCreatedAt is the schema descriptor for created_at field.
	documentversionDescCreatedAt := documentversionFields[8].Descriptor()
	// documentversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentversion.DefaultCreatedAt = documentversionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	iterationrecordFields := schema.IterationRecord{}.Fields()
	_ = iterationrecordFields
	// iterationrecordDescOutputVersion is the schema descriptor for output_version field.
	iterationrecordDescOutputVersion := iterationrecordFields[4].Descriptor()
	// iterationrecord.DefaultOutputVersion holds the default value on creation for the output_version field.
	iterationrecord.DefaultOutputVersion = iterationrecordDescOutputVersion.Default.(int)
	// iterationrecordDescHighCount is the schema descriptor for high_count field.
	iterationrecordDescHighCount := iterationrecordFields[5].Descriptor()
	// iterationrecord.DefaultHighCount holds the default value on creation for the high_count field.
	iterationrecord.DefaultHighCount = iterationrecordDescHighCount.Default.(int)
	// iterationrecordDescMediumCount is the schema descriptor for medium_count field.
	iterationrecordDescMediumCount := iterationrecordFields[6].Descriptor()
	// iterationrecord.DefaultMediumCount holds the default value on creation for the medium_count field.
	iterationrecord.DefaultMediumCount = iterationrecordDescMediumCount.Default.(int)
	// iterationrecordDescLowCount is the schema descriptor for low_count field.
	iterationrecordDescLowCount := iterationrecordFields[7].Descriptor()
	// iterationrecord.DefaultLowCount holds the default value on creation for the low_count field.
	iterationrecord.DefaultLowCount = iterationrecordDescLowCount.Default.(int)
	// iterationrecordDescDelta is the schema descriptor for delta field.
	iterationrecordDescDelta := iterationrecordFields[8].Descriptor()
	// iterationrecord.DefaultDelta holds the default value on creation for the delta field.
	iterationrecord.DefaultDelta = iterationrecordDescDelta.Default.(float64)
	// iterationrecordDescShouldStop is the schema descriptor for should_stop field.
	iterationrecordDescShouldStop := iterationrecordFields[9].Descriptor()
	// iterationrecord.DefaultShouldStop holds the default value on creation for the should_stop field.
	iterationrecord.DefaultShouldStop = iterationrecordDescShouldStop.Default.(bool)
	// iterationrecordDescEndedAt is the schema descriptor for ended_at field.
	iterationrecordDescEndedAt := iterationrecordFields[13].Descriptor()
	// iterationrecord.DefaultEndedAt holds the default value on creation for the ended_at field.
	iterationrecord.DefaultEndedAt = iterationrecordDescEndedAt.Default.(func() time.Time)
	refinementsessionFields := schema.RefinementSession{}.Fields()
	_ = refinementsessionFields
	// refinementsessionDescCurrentIteration is the schema descriptor for current_iteration field.
	refinementsessionDescCurrentIteration := refinementsessionFields[9].Descriptor()
	// refinementsession.DefaultCurrentIteration holds the default value on creation for the current_iteration field.
	refinementsession.DefaultCurrentIteration = refinementsessionDescCurrentIteration.Default.(int)
	// refinementsessionDescCreatedAt is the schema descriptor for created_at field.
	refinementsessionDescCreatedAt := refinementsessionFields[18].Descriptor()
	// refinementsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	refinementsession.DefaultCreatedAt = refinementsessionDescCreatedAt.Default.(func() time.Time)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescHighCount is the schema descriptor for high_count field.
	reviewDescHighCount := reviewFields[8].Descriptor()
	// review.DefaultHighCount holds the default value on creation for the high_count field.
	review.DefaultHighCount = reviewDescHighCount.Default.(int)
	// reviewDescMediumCount is the schema descriptor for medium_count field.
	reviewDescMediumCount := reviewFields[9].Descriptor()
	// review.DefaultMediumCount holds the default value on creation for the medium_count field.
	review.DefaultMediumCount = reviewDescMediumCount.Default.(int)
	// reviewDescLowCount is the schema descriptor for low_count field.
	reviewDescLowCount := reviewFields[10].Descriptor()
	// review.DefaultLowCount holds the default value on creation for the low_count field.
	review.DefaultLowCount = reviewDescLowCount.Default.(int)
	// reviewDescSalvaged is the schema descriptor for salvaged field.
	reviewDescSalvaged := reviewFields[11].Descriptor()
	// review.DefaultSalvaged holds the default value on creation for the salvaged field.
	review.DefaultSalvaged = reviewDescSalvaged.Default.(bool)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[13].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
}

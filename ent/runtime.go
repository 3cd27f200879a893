// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	filecomparisonFields := schema.FileComparison{}.Fields()
	_ = filecomparisonFields
	// filecomparisonDescSimilarityScore is the schema descriptor for similarity_score field.
	filecomparisonDescSimilarityScore := filecomparisonFields[4].Descriptor()
	// filecomparison.SimilarityScoreValidator is a validator for the "similarity_score" field. It is called by the builders before save.
	filecomparison.SimilarityScoreValidator = func() func(float64) error {
		validators := filecomparisonDescSimilarityScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(similarity_score float64) error {
			for _, fn := range fns {
				if err := fn(similarity_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}

package clustergram

import "errors"

// Sentinel errors. Call sites wrap them with context, so compare with errors.Is.
var (
	// ErrEmptyInput is returned when clustering is asked to run on no vectors.
	ErrEmptyInput = errors.New("clustergram: empty input")

	// ErrInsufficientData is returned for a single vector: there is nothing
	// to merge, so callers must special-case single-point trees.
	ErrInsufficientData = errors.New("clustergram: insufficient data")

	// ErrDimensionMismatch is returned when two vectors have different
	// component counts.
	ErrDimensionMismatch = errors.New("clustergram: dimension mismatch")

	// ErrInvalidLinkage is returned for an unrecognized linkage tag.
	ErrInvalidLinkage = errors.New("clustergram: invalid linkage rule")

	// ErrInvalidMetric is returned for an unrecognized distance metric name.
	ErrInvalidMetric = errors.New("clustergram: invalid distance metric")

	// ErrInvalidClusterCount is returned by Cut for k outside [1, n].
	ErrInvalidClusterCount = errors.New("clustergram: invalid cluster count")

	// ErrEmptyHierarchy is returned when laying out a nil hierarchy.
	ErrEmptyHierarchy = errors.New("clustergram: empty hierarchy")

	// ErrInvalidLayout is returned for a non-positive span or radius or a
	// negative minimum angle.
	ErrInvalidLayout = errors.New("clustergram: invalid layout options")

	// ErrUnknownFeature is returned when a feature name is not in the dataset.
	ErrUnknownFeature = errors.New("clustergram: unknown feature")

	// ErrInvalidConfig is returned for options that fail validation.
	ErrInvalidConfig = errors.New("clustergram: invalid config")
)

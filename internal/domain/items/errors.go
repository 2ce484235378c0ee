package items

import (
	"errors"
	"fmt"
)

// Registry construction errors. Only BuildRegistry fails; queries are total.
var (
	ErrDuplicateID        = errors.New("duplicate item id")
	ErrEmptySources       = errors.New("item has no sources")
	ErrInvalidReliability = errors.New("reliability out of range")
	ErrEmptyRequiredField = errors.New("required field is empty")
	ErrInvalidCategory    = errors.New("unknown item category")
	ErrInvalidMethod      = errors.New("unknown acquisition method")
)

func duplicateIDError(id string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateID, id)
}

func emptySourcesError(id string) error {
	return fmt.Errorf("%w: item %q", ErrEmptySources, id)
}

func invalidReliabilityError(id string, value int) error {
	return fmt.Errorf("%w: item %q has reliability %d, want %d-%d",
		ErrInvalidReliability, id, value, ReliabilityMin, ReliabilityMax)
}

func emptyFieldError(id, field string) error {
	if id == "" {
		return fmt.Errorf("%w: %s", ErrEmptyRequiredField, field)
	}
	return fmt.Errorf("%w: %s on item %q", ErrEmptyRequiredField, field, id)
}

func invalidCategoryError(id string, cat ItemCategory) error {
	return fmt.Errorf("%w: %q on item %q", ErrInvalidCategory, cat, id)
}

func invalidMethodError(id string, m AcquisitionMethod) error {
	return fmt.Errorf("%w: %q on item %q", ErrInvalidMethod, m, id)
}

package service

import "errors"

var (
	// ErrSectionLocked rejects completion of a section that has not been
	// unlocked yet.
	ErrSectionLocked = errors.New("section is locked")

	// ErrRequirementsIncomplete rejects completion of a section whose
	// progression requirements are not all satisfied.
	ErrRequirementsIncomplete = errors.New("progression requirements are not all complete")

	// ErrEmptyLogContent rejects log entries whose content is empty or
	// whitespace only.
	ErrEmptyLogContent = errors.New("log entry content is empty")

	// ErrUnknownPath rejects log entries referencing a path that does not
	// exist.
	ErrUnknownPath = errors.New("unknown learning path")
)

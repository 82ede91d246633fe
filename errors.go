package pagemix

import (
	"errors"

	"github.com/pagemix/pagemix/lib/snapshot"
)

// Sentinel errors for the registry, snapshot, and vocabulary surfaces.
// The merge engine itself raises nothing: malformed mixins degrade
// silently.
var (
	ErrPageNotFound     = errors.New("pagemix: page not found")
	ErrEmptyVocabulary  = errors.New("pagemix: vocabulary has no events")
	ErrInvalidFormat    = errors.New("pagemix: invalid snapshot format")
	ErrSignatureInvalid = errors.New("pagemix: snapshot signature verification failed")
)

// IsNotFound checks if err is a page-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}

// IsSnapshotError checks if err is a snapshot format or signature error.
func IsSnapshotError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrSignatureInvalid)
}

// wrapSnapshotError wraps snapshot package errors with pagemix sentinels.
func wrapSnapshotError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, snapshot.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, snapshot.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	return err
}

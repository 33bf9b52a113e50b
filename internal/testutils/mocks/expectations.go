// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	rostermock "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster/mock"
)

// ExpectStoreEmpty makes every read of the mock store report a missing key and
// accepts any number of writes
func ExpectStoreEmpty(store *rostermock.MockStore) {
	store.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return("", errors.NotFound("key not found")).
		AnyTimes()
	store.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	store.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

// ExpectStoreUnavailable makes every call on the mock store fail the way an
// unreachable backend does
func ExpectStoreUnavailable(store *rostermock.MockStore) {
	unavailable := errors.Unavailable("store unavailable")

	store.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return("", unavailable).
		AnyTimes()
	store.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(unavailable).
		AnyTimes()
	store.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(unavailable).
		AnyTimes()
}

// ExpectStoreValue makes reads of key return value. Register it before
// ExpectStoreEmpty or ExpectStoreUnavailable so it takes precedence.
func ExpectStoreValue(store *rostermock.MockStore, key, value string) {
	store.EXPECT().
		Get(gomock.Any(), key).
		Return(value, nil).
		AnyTimes()
}

package meet_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	meet "github.com/goliatone/go-meet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new profile", func(t *testing.T) {
		photo := "https://example.com/p.png"
		input := meet.ProfileInput{
			UID:         "user-1",
			DisplayName: "Person One",
			Email:       "one@example.com",
			PhotoURL:    &photo,
		}

		profiles := new(MockProfiles)
		profiles.On("Upsert", mock.Anything, input).Return(&meet.UserProfile{
			UID:       "user-1",
			CreatedAt: time.Now().UTC(),
		}, true, nil)

		directory := new(MockDirectory)
		directory.On("RegisterOrUpdate", mock.Anything, "user-1", "Person One", photo).Return(nil)

		handler := meet.NewUpsertUserHandler(profiles, directory, nil)

		result, err := handler.Execute(ctx, meet.UpsertUserMessage{
			UID:         "user-1",
			DisplayName: "Person One",
			Email:       "one@example.com",
			PhotoURL:    &photo,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, "user user-1 created", result.Message)

		profiles.AssertExpectations(t)
		directory.AssertExpectations(t)
	})

	t.Run("updates an existing profile", func(t *testing.T) {
		profiles := new(MockProfiles)
		profiles.On("Upsert", mock.Anything, mock.Anything).Return(&meet.UserProfile{
			UID: "user-1",
		}, false, nil)

		directory := new(MockDirectory)
		directory.On("RegisterOrUpdate", mock.Anything, "user-1", "Renamed", "").Return(nil)

		handler := meet.NewUpsertUserHandler(profiles, directory, nil)

		result, err := handler.Execute(ctx, meet.UpsertUserMessage{
			UID:         "user-1",
			DisplayName: "Renamed",
			Email:       "one@example.com",
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "user user-1 updated", result.Message)
	})

	t.Run("rejects invalid payloads before any write", func(t *testing.T) {
		cases := []struct {
			name  string
			event meet.UpsertUserMessage
		}{
			{"blank uid", meet.UpsertUserMessage{UID: "   ", DisplayName: "P", Email: "p@example.com"}},
			{"missing uid", meet.UpsertUserMessage{DisplayName: "P", Email: "p@example.com"}},
			{"blank display name", meet.UpsertUserMessage{UID: "user-1", DisplayName: " ", Email: "p@example.com"}},
			{"email without at sign", meet.UpsertUserMessage{UID: "user-1", DisplayName: "P", Email: "not-an-email"}},
			{"missing email", meet.UpsertUserMessage{UID: "user-1", DisplayName: "P"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				profiles := new(MockProfiles)
				directory := new(MockDirectory)
				handler := meet.NewUpsertUserHandler(profiles, directory, nil)

				_, err := handler.Execute(ctx, tc.event)
				require.Error(t, err)

				var richErr *goerrors.Error
				require.ErrorAs(t, err, &richErr)
				assert.Equal(t, goerrors.CategoryBadInput, richErr.Category)
				assert.Equal(t, meet.TextCodeInvalidUserPayload, richErr.TextCode)

				profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
				directory.AssertNotCalled(t, "RegisterOrUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("directory mirror failure is swallowed", func(t *testing.T) {
		profiles := new(MockProfiles)
		profiles.On("Upsert", mock.Anything, mock.Anything).Return(&meet.UserProfile{
			UID: "user-1",
		}, true, nil)

		directory := new(MockDirectory)
		directory.On("RegisterOrUpdate", mock.Anything, "user-1", "Person One", "").
			Return(fmt.Errorf("directory is down"))

		logger := &testLogger{}
		handler := meet.NewUpsertUserHandler(profiles, directory, logger)

		result, err := handler.Execute(ctx, meet.UpsertUserMessage{
			UID:         "user-1",
			DisplayName: "Person One",
			Email:       "one@example.com",
		})
		require.NoError(t, err, "the store write is the success criterion")
		assert.True(t, result.Created)
		assert.NotEmpty(t, logger.errors)
	})

	t.Run("store failure surfaces as internal", func(t *testing.T) {
		profiles := new(MockProfiles)
		profiles.On("Upsert", mock.Anything, mock.Anything).
			Return(nil, false, fmt.Errorf("disk full"))

		directory := new(MockDirectory)
		handler := meet.NewUpsertUserHandler(profiles, directory, nil)

		_, err := handler.Execute(ctx, meet.UpsertUserMessage{
			UID:         "user-1",
			DisplayName: "Person One",
			Email:       "one@example.com",
		})
		require.Error(t, err)

		var richErr *goerrors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, goerrors.CategoryInternal, richErr.Category)
		assert.Equal(t, meet.TextCodeStoreFailure, richErr.TextCode)

		directory.AssertNotCalled(t, "RegisterOrUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumistream/internal/domain/ticket"
	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/botguard"
	apperrors "lumistream/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "portal ticket without guard fields",
			command: CreateTicketCommand{
				UserID:      1,
				Subject:     "Channels freeze during prime time",
				Description: "Every evening the sports package starts buffering.",
				Priority:    string(vo.PriorityHigh),
			},
		},
		{
			name: "public form ticket with passing guard",
			command: CreateTicketCommand{
				UserID:      2,
				Subject:     "Cannot renew my subscription",
				Description: "The renew button redirects me to an empty page.",
				Priority:    string(vo.PriorityMedium),
				Guard: &botguard.Fields{
					MathChallenge: "3,4",
					MathAnswer:    "7",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					if err := tkt.SetID(100); err != nil {
						return err
					}
					savedTicket = tkt
					return nil
				},
			}

			notified := false
			mockNotifier := &mockTicketNotifier{
				TicketCreatedFunc: func(ctx context.Context, tkt *ticket.Ticket) {
					notified = true
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, mockNotifier, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(100), result.TicketID)
			assert.Equal(t, vo.StatusOpen.String(), result.Status)
			assert.False(t, result.Decoy)
			assert.True(t, notified)

			require.NotNil(t, savedTicket)
			assert.Equal(t, tt.command.Subject, savedTicket.Subject())
			assert.Equal(t, tt.command.UserID, savedTicket.OwnerID())
		})
	}
}

func TestCreateTicketUseCase_Execute_HoneypotDecoy(t *testing.T) {
	saved := false
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			saved = true
			return nil
		},
	}
	notified := false
	mockNotifier := &mockTicketNotifier{
		TicketCreatedFunc: func(ctx context.Context, tkt *ticket.Ticket) {
			notified = true
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, mockNotifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		UserID:      1,
		Subject:     "Totally legitimate inquiry",
		Description: "Buy cheap followers now",
		Priority:    string(vo.PriorityLow),
		Guard: &botguard.Fields{
			WebsiteURL:    "https://spam.example.com",
			MathChallenge: "3,4",
			MathAnswer:    "7",
		},
	})

	require.NoError(t, err, "decoy path reports success")
	require.NotNil(t, result)
	assert.True(t, result.Decoy)
	assert.Zero(t, result.TicketID)
	assert.False(t, saved, "nothing is persisted for a decoy")
	assert.False(t, notified, "no notifications for a decoy")
}

func TestCreateTicketUseCase_Execute_WrongMathAnswer(t *testing.T) {
	useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTicketNotifier{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		UserID:      1,
		Subject:     "Subject",
		Description: "Description",
		Priority:    string(vo.PriorityLow),
		Guard: &botguard.Fields{
			MathChallenge: "3,4",
			MathAnswer:    "9",
		},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Incorrect answer to the math question.")
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       CreateTicketCommand
		expectedError string
	}{
		{
			name: "empty subject",
			command: CreateTicketCommand{
				UserID:      1,
				Subject:     "",
				Description: "Description",
				Priority:    string(vo.PriorityLow),
			},
			expectedError: "subject is required",
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				UserID:      1,
				Subject:     "Subject",
				Description: "Description",
				Priority:    "critical",
			},
			expectedError: "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTicketNotifier{}, &mockLogger{})

			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database unavailable")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockTicketNotifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		UserID:      1,
		Subject:     "Subject",
		Description: "Description",
		Priority:    string(vo.PriorityLow),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to save ticket")
}

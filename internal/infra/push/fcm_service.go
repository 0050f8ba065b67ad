// Package push contains the FCM implementation of the push transport.
package push

import (
	"context"
	"fmt"

	"classping/internal/domain/entity"
	"classping/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a push transport backed by Firebase Cloud Messaging.
// The messaging client is constructed once here and owned by the returned
// service for the life of the process.
func NewFCMService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmService{
		client: client,
	}, nil
}

// SendSingle sends a push notification to a single device token
func (s *fcmService) SendSingle(ctx context.Context, token string, msg *entity.NotificationMessage) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatch sends a push notification to multiple device tokens (max 500 tokens).
// FCM's SendEachForMulticast returns per-token responses aligned positionally
// with the input token list, which is what makes invalid-token identification
// possible.
func (s *fcmService) SendBatch(ctx context.Context, tokens []string, msg *entity.NotificationMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return nil, fmt.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	result := &service.BatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			// Check if error is due to invalid or unregistered token
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
			}
		}
	}

	return result, nil
}

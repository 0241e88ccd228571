package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/service"
)

type gmailClient struct {
	client *gmail.Service
	logger *logger.Logger
}

func NewGmailClient(accessToken string, logger *logger.Logger) (service.GmailClient, error) {
	httpClient := &http.Client{
		Transport: &oauth2Transport{token: accessToken},
	}

	gmailService, err := gmail.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &gmailClient{
		client: gmailService,
		logger: logger,
	}, nil
}

type oauth2Transport struct {
	token string
}

func (t *oauth2Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// FetchRecentEmails lists the most recent messages in the authenticated
// user's mailbox and resolves each into a plain record of sender, subject,
// snippet and body. Messages that fail to resolve are skipped, not fatal.
func (g *gmailClient) FetchRecentEmails(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
	user := "me" // 'me' refers to the authenticated user
	list, err := g.client.Users.Messages.List(user).MaxResults(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	var emails []*model.Email

	for _, msg := range list.Messages {
		message, err := g.client.Users.Messages.Get(user, msg.Id).Format("full").Do()
		if err != nil {
			g.logger.Error("Failed to get message:", msg.Id, err)
			continue
		}

		sender := ""
		subject := ""
		for _, header := range message.Payload.Headers {
			switch header.Name {
			case "Subject":
				subject = header.Value
			case "From":
				sender = header.Value
			}
		}

		body := g.extractBody(message.Payload)
		if body == "" {
			body = message.Snippet
		}

		receivedAt := time.Unix(message.InternalDate/1000, 0)

		emails = append(emails, model.NewEmail(msg.Id, sender, subject, message.Snippet, body, receivedAt))
	}

	g.logger.Info("Fetched", len(emails), "recent emails from Gmail for:", userEmail)
	return emails, nil
}

// extractBody pulls the text/plain content out of the message payload,
// descending into multipart containers. The pipeline consumes plain text;
// HTML alternatives are ignored.
func (g *gmailClient) extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if payload.MimeType == "text/plain" && payload.Body != nil && payload.Body.Data != "" {
		return g.decodePart(payload.Body.Data)
	}

	for _, part := range payload.Parts {
		if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
			return g.decodePart(part.Body.Data)
		}
	}

	// Descend into nested multipart containers
	for _, part := range payload.Parts {
		if len(part.Parts) > 0 {
			if body := g.extractBody(part); body != "" {
				return body
			}
		}
	}

	// Last resort: top-level body regardless of mime type
	if payload.Body != nil && payload.Body.Data != "" {
		return g.decodePart(payload.Body.Data)
	}
	return ""
}

func (g *gmailClient) decodePart(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		g.logger.Error("Failed to decode email body:", err)
		return ""
	}
	return string(decoded)
}

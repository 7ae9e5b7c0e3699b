package notify

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"
)

// CommentNotifier pushes FCM messages to offer authors. A nil Client
// disables delivery, so callers stay wired even when credentials are
// not configured.
type CommentNotifier struct {
	Client   *messaging.Client
	ErrorLog *log.Logger
}

func (n *CommentNotifier) NewComment(ctx context.Context, token, offerName string) {
	if n == nil || n.Client == nil || token == "" {
		return
	}

	title := "New review"
	body := fmt.Sprintf("Your offer %q has a new review", offerName)

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := n.Client.Send(ctx, message); err != nil && n.ErrorLog != nil {
		n.ErrorLog.Printf("fcm send failed: %v", err)
	}
}

package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/x/util"
)

// RoomSource resolves a chat room with its member set.
type RoomSource interface {
	Get(ctx context.Context, id string) (core.ChatRoom, error)
}

// GcmNotifier pushes message events to the devices of the room's
// members over a GCM-style HTTP endpoint. The sender's own devices are
// left out.
type GcmNotifier struct {
	rooms  RoomSource
	client *http.Client
	config util.Config
}

func NewGcmNotifier(rooms RoomSource, config util.Config) *GcmNotifier {
	client := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   5 * time.Second,
	}
	return &GcmNotifier{rooms, client, config}
}

type gcmPayload struct {
	RegistrationIDs []string       `json:"registration_ids"`
	Data            map[string]any `json:"data"`
}

func (n *GcmNotifier) Notify(ctx context.Context, message core.Message) error {
	ctx, span := tracer.Start(ctx, "Notification.Gcm.Notify")
	defer span.End()

	room, err := n.rooms.Get(ctx, message.ChatRoomID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to resolve room")
	}

	var registrationIDs []string
	for _, member := range room.Members {
		if member.ID == message.MemberID {
			continue
		}
		registrationIDs = append(registrationIDs, member.RegistrationIDs...)
	}

	// nobody to notify when the sender is alone in the room
	if len(registrationIDs) == 0 {
		return nil
	}

	siteURL := n.config.Chat.SiteURL
	payload := gcmPayload{
		RegistrationIDs: registrationIDs,
		Data: map[string]any{
			"id":        message.ID,
			"url":       fmt.Sprintf("%s/messages/%s", siteURL, message.ID),
			"text":      message.Text,
			"signature": message.Signature,
			"valid":     message.Valid,
			"timestamp": message.CDate,
			"member": map[string]any{
				"url":    fmt.Sprintf("%s/members/%s", siteURL, message.Member.LrzID),
				"lrz_id": message.Member.LrzID,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.GCM.Endpoint, bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+n.config.GCM.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to push notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err = errors.Errorf("push endpoint returned %d", resp.StatusCode)
		span.RecordError(err)
		return err
	}

	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// VenuesPubSub fans venue changes out to every instance so each can drop its
// cached copies.
type VenuesPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewVenuesPubSub(rdb *redis.Client) *VenuesPubSub {
	return &VenuesPubSub{
		rdb:     rdb,
		channel: ChannelVenuesChanged(),
	}
}

type venueChangedMsg struct {
	Type    string `json:"type"`
	VenueID string `json:"venue_id"`
	TsUnix  int64  `json:"ts_unix"`
}

func (p *VenuesPubSub) PublishVenueChanged(ctx context.Context, venueID string) error {
	msg := venueChangedMsg{
		Type:    "venue_changed",
		VenueID: venueID,
		TsUnix:  time.Now().Unix(),
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks until ctx is done, calling handler for every venue change.
func (p *VenuesPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, venueID string)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			if venueID, ok := decodeVenueChanged(m.Payload); ok {
				handler(ctx, venueID)
			}
		}
	}
}

func decodeVenueChanged(payload string) (string, bool) {
	var ev venueChangedMsg
	if err := json.Unmarshal([]byte(payload), &ev); err != nil || ev.VenueID == "" {
		return "", false
	}

	return ev.VenueID, true
}
